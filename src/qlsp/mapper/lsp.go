package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	protocolmapper "github.com/uber/amazonq-lsp/src/qlsp/internal/protocol"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// EditOffset stores a string modification based on byte offset in the string.
type EditOffset struct {
	start int
	end   int
	text  string
}

// RequestToShowMessageParams maps the parameters from a jsonrpc2.Request into protocol.ShowMessageParams.
func RequestToShowMessageParams(req jsonrpc2.Request) (*protocol.ShowMessageParams, error) {
	params := protocol.ShowMessageParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToShowMessageRequestParams maps the parameters from a jsonrpc2.Request into protocol.ShowMessageRequestParams.
func RequestToShowMessageRequestParams(req jsonrpc2.Request) (*protocol.ShowMessageRequestParams, error) {
	params := protocol.ShowMessageRequestParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToLogMessageParams maps the parameters from a jsonrpc2.Request into protocol.LogMessageParams.
func RequestToLogMessageParams(req jsonrpc2.Request) (*protocol.LogMessageParams, error) {
	params := protocol.LogMessageParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToShowDocumentParams maps the parameters from a jsonrpc2.Request into protocol.ShowDocumentParams.
func RequestToShowDocumentParams(req jsonrpc2.Request) (*protocol.ShowDocumentParams, error) {
	params := protocol.ShowDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToConfigurationParams maps the parameters from a jsonrpc2.Request into protocol.ConfigurationParams.
func RequestToConfigurationParams(req jsonrpc2.Request) (*protocol.ConfigurationParams, error) {
	params := protocol.ConfigurationParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToProgressParams maps the parameters from a jsonrpc2.Request into protocol.ProgressParams.
func RequestToProgressParams(req jsonrpc2.Request) (*protocol.ProgressParams, error) {
	params := protocol.ProgressParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToPublishDiagnosticsParams maps the parameters from a jsonrpc2.Request into protocol.PublishDiagnosticsParams.
func RequestToPublishDiagnosticsParams(req jsonrpc2.Request) (*protocol.PublishDiagnosticsParams, error) {
	params := protocol.PublishDiagnosticsParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToParams unmarshals the parameters from a jsonrpc2.Request into v.
func RequestToParams(req jsonrpc2.Request, v interface{}) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return wrapErrParse(err)
	}
	return nil
}

// DiffsToEditOffsets converts diffs into a list of text edits based on offsets within the initial text.
func DiffsToEditOffsets(diffs []diffmatchpatch.Diff) (initialText bytes.Buffer, offsets []EditOffset) {
	edits := make([]EditOffset, 0, len(diffs))
	offset := 0
	for _, d := range diffs {
		start := offset
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			initialText.WriteString(d.Text)
			offset += len(d.Text)
			edits = append(edits, EditOffset{start: start, end: offset})
		case diffmatchpatch.DiffEqual:
			initialText.WriteString(d.Text)
			offset += len(d.Text)
		case diffmatchpatch.DiffInsert:
			edits = append(edits, EditOffset{start: start, end: start, text: d.Text})
		}
	}
	return initialText, edits
}

// EditOffsetsToTextEdits converts a list of offset based edits to TextEdits formatted for LSP protocol.
func EditOffsetsToTextEdits(initialText bytes.Buffer, edits []EditOffset) ([]protocol.TextEdit, error) {
	textEdits := make([]protocol.TextEdit, 0, len(edits))
	m := protocolmapper.NewTextOffsetMapper(initialText.Bytes())
	for _, edit := range edits {
		start, err := m.OffsetPosition(edit.start)
		if err != nil {
			return nil, err
		}
		end, err := m.OffsetPosition(edit.end)
		if err != nil {
			return nil, err
		}
		textEdits = append(textEdits, protocol.TextEdit{
			Range:   protocol.Range{Start: start, End: end},
			NewText: edit.text,
		})
	}
	return textEdits, nil
}

// DiffsToTextEdits converts diffs into a list of text edits that can be applied to the original document.
func DiffsToTextEdits(diffs []diffmatchpatch.Diff) ([]protocol.TextEdit, error) {
	initialText, edits := DiffsToEditOffsets(diffs)
	return EditOffsetsToTextEdits(initialText, edits)
}

// ContentDiff compares two versions of a document and returns the patch text and the edits turning before into after.
func ContentDiff(before, after string) (patch string, edits []protocol.TextEdit, err error) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	edits, err = DiffsToTextEdits(diffs)
	if err != nil {
		return "", nil, fmt.Errorf("computing text edits: %w", err)
	}
	return dmp.PatchToText(dmp.PatchMake(before, diffs)), edits, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
