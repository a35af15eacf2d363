package snapshot

import (
	"encoding/json"

	gerrors "github.com/wesen/nodegraph/pkg/errors"
)

// Marshal encodes doc as JSON.
func Marshal(doc Document) ([]byte, error) {
	return json.Marshal(doc)
}

// Unmarshal decodes a JSON document. Decoding failures carry
// ErrCodeMalformedDocument.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeMalformedDocument, err, "decode document")
	}
	return doc, nil
}
