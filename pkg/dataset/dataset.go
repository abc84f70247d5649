// Package dataset loads and validates tool-assessment datasets.
//
// # Overview
//
// A dataset is a small TOML document holding the tools a team has assessed:
//
//	title = "Platform Tools"
//
//	[[tools]]
//	id = "terraform"
//	title = "Terraform"
//	description = "Infrastructure as code"
//	url = "https://terraform.io"
//	category = "adopt"
//
//	[tools.reviewer]
//	name = "Sam"
//
// Datasets are loaded once and treated as read-only for the lifetime of the
// widget. Categories are normalized to lowercase on load; tools with
// unrecognized categories are kept in the dataset (validation warns about
// them via [Dataset.Unrecognized]) but are silently skipped by positioning.
//
// Besides local files, datasets can be fetched over HTTP ([Fetch]) or shared
// through a MongoDB collection ([Store]).
package dataset

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/toolradar/pkg/errors"
	"github.com/matzehuels/toolradar/pkg/radar"
)

// Dataset is an ordered collection of tool assessments.
type Dataset struct {
	Title string       `toml:"title" json:"title" bson:"title"`
	Tools []radar.Tool `toml:"tools" json:"tools" bson:"tools"`
}

// Parse decodes a TOML dataset and normalizes tool categories to lowercase.
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode dataset")
	}

	for i := range d.Tools {
		c, _ := radar.ParseCategory(string(d.Tools[i].Category))
		d.Tools[i].Category = c
	}

	return &d, nil
}

// Load reads a TOML dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks dataset integrity: every tool needs a safe, unique ID and
// a non-empty title. Unrecognized categories are deliberately not an error
// (best-effort visualization posture); use [Dataset.Unrecognized] to report
// them.
func (d *Dataset) Validate() error {
	seen := make(map[string]struct{}, len(d.Tools))
	for _, t := range d.Tools {
		if err := errors.ValidateToolID(t.ID); err != nil {
			return err
		}
		if t.Title == "" {
			return errors.New(errors.ErrCodeInvalidDataset, "tool %q has no title", t.ID)
		}
		if t.URL != "" {
			if err := errors.ValidateURL(t.URL); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDataset, err, "tool %q", t.ID)
			}
		}
		if _, dup := seen[t.ID]; dup {
			return errors.New(errors.ErrCodeInvalidDataset, "duplicate tool id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// Unrecognized returns the IDs of tools whose category is not one of the
// four recognized assessment levels. These tools never receive a position.
func (d *Dataset) Unrecognized() []string {
	var ids []string
	for _, t := range d.Tools {
		if !t.Category.Valid() {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// CountByCategory returns the number of tools per recognized category.
func (d *Dataset) CountByCategory() map[radar.Category]int {
	counts := make(map[radar.Category]int, 4)
	for _, t := range d.Tools {
		if t.Category.Valid() {
			counts[t.Category]++
		}
	}
	return counts
}
