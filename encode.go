package carteira

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeAssets writes the asset collection as one indented JSON document.
func EncodeAssets(w io.Writer, assets []Asset) error {
	return encodeDocument(w, assets)
}

// DecodeAssets reads an asset collection document.
func DecodeAssets(r io.Reader) ([]Asset, error) {
	var assets []Asset
	if err := json.NewDecoder(r).Decode(&assets); err != nil {
		return nil, fmt.Errorf("could not decode assets document: %w", err)
	}
	return assets, nil
}

// EncodeContributions writes the contribution collection as one indented JSON document.
func EncodeContributions(w io.Writer, list []Contribution) error {
	return encodeDocument(w, list)
}

// DecodeContributions reads a contribution collection document.
func DecodeContributions(r io.Reader) ([]Contribution, error) {
	var list []Contribution
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("could not decode contributions document: %w", err)
	}
	return list, nil
}

func encodeDocument(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
