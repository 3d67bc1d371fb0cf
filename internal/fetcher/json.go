package fetcher

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// DecodeJSONObject decodes a single JSON object from a reader.
func DecodeJSONObject[T any](r io.Reader) (*T, error) {
	var obj T
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, eris.Wrap(err, "json: decode object")
	}
	return &obj, nil
}

// DecodeJSONArray decodes a full JSON array from a reader.
// The body must be an array at the top level.
func DecodeJSONArray[T any](r io.Reader) ([]T, error) {
	var items []T
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, eris.Wrap(err, "json: decode array")
	}
	return items, nil
}

// FetchJSONObject downloads the URL and decodes the body as a JSON object.
func FetchJSONObject[T any](ctx context.Context, f Fetcher, url string) (*T, error) {
	body, err := f.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	return DecodeJSONObject[T](body)
}

// FetchJSONArray downloads the URL and decodes the body as a JSON array.
func FetchJSONArray[T any](ctx context.Context, f Fetcher, url string) ([]T, error) {
	body, err := f.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	return DecodeJSONArray[T](body)
}
