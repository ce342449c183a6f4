package doccorpus

import (
	"bytes"
	"compress/zlib"
	"encoding/json"
	"io"
)

// EncodeCachedPage serializes a cache entry as zlib-compressed JSON,
// the wire format shared by every cache backend.
func EncodeCachedPage(page *CachedPage) ([]byte, error) {
	payload, err := json.Marshal(page)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(payload); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeCachedPage is the inverse of EncodeCachedPage.
func DecodeCachedPage(data []byte) (*CachedPage, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var page CachedPage
	if err := json.Unmarshal(payload, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
