package carteira

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

const (
	assetsFile        = "assets.json"
	contributionsFile = "contributions.json"
)

// Store persists the two collections as one JSON document each under a data
// directory. The valuation core never touches it: callers load, compute, and
// save themselves.
type Store struct {
	dir string
}

// OpenStore opens (creating if needed) a store rooted at dir.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's data directory.
func (s *Store) Dir() string { return s.dir }

// LoadAssets reads the asset collection. A missing document is an empty
// collection, not an error.
func (s *Store) LoadAssets() ([]Asset, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, assetsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeAssets(bytes.NewReader(data))
}

// SaveAssets replaces the asset collection.
func (s *Store) SaveAssets(assets []Asset) error {
	return s.write(assetsFile, func(buf *bytes.Buffer) error {
		return EncodeAssets(buf, assets)
	})
}

// UpdateAsset replaces the stored asset with the same identity.
func (s *Store) UpdateAsset(asset Asset) error {
	assets, err := s.LoadAssets()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(assets, func(a Asset) bool { return a.ID == asset.ID })
	if i < 0 {
		return fmt.Errorf("unknown asset %q", asset.ID)
	}
	assets[i] = asset
	return s.SaveAssets(assets)
}

// DeleteAsset removes an asset record. Contribution history referencing it is
// deliberately left in place; replay and receipts fall back to the name and
// class denormalized on each allocation line.
func (s *Store) DeleteAsset(id string) error {
	assets, err := s.LoadAssets()
	if err != nil {
		return err
	}
	filtered := slices.DeleteFunc(assets, func(a Asset) bool { return a.ID == id })
	return s.SaveAssets(filtered)
}

// LoadContributions reads the contribution collection. A missing document is
// an empty collection, not an error.
func (s *Store) LoadContributions() ([]Contribution, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, contributionsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeContributions(bytes.NewReader(data))
}

// SaveContributions replaces the contribution collection.
func (s *Store) SaveContributions(list []Contribution) error {
	return s.write(contributionsFile, func(buf *bytes.Buffer) error {
		return EncodeContributions(buf, list)
	})
}

// AddContribution appends a round and keeps the collection ordered newest
// first, which is the order listings default to.
func (s *Store) AddContribution(c Contribution) error {
	list, err := s.LoadContributions()
	if err != nil {
		return err
	}
	list = append(list, c)
	slices.SortStableFunc(list, func(a, b Contribution) int {
		return b.Date.Compare(a.Date)
	})
	return s.SaveContributions(list)
}

// DeleteContributions removes the rounds with the given identities. Asset
// positions are not recomputed: only the replay view reflects removed history.
func (s *Store) DeleteContributions(ids ...string) error {
	list, err := s.LoadContributions()
	if err != nil {
		return err
	}
	filtered := slices.DeleteFunc(list, func(c Contribution) bool {
		return slices.Contains(ids, c.ID)
	})
	return s.SaveContributions(filtered)
}

// write renders a document in memory first so a failed encode cannot truncate
// the previous document on disk.
func (s *Store) write(name string, encode func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), 0o644)
}
