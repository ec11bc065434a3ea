// Package amphibian holds the amphibian record model and the repository that
// fetches records from the remote catalog.
package amphibian

import "amphibians/internal/jsonutil"

// Record is one amphibian entry of the catalog.
type Record struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ImageURL    string `json:"img_src"`
}

// wireRecord accepts both spellings of the image field seen in the wild.
type wireRecord struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ImgSrc      string `json:"img_src"`
	ImgSrcCamel string `json:"imgSrc"`
}

// UnmarshalJSON decodes a record, mapping img_src or imgSrc to ImageURL.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := jsonutil.UnmarshalWithContext(data, &w, "record"); err != nil {
		return err
	}
	img := w.ImgSrc
	if img == "" {
		img = w.ImgSrcCamel
	}
	*r = Record{
		Name:        w.Name,
		Type:        w.Type,
		Description: w.Description,
		ImageURL:    img,
	}
	return nil
}

// Title is the card heading, e.g. "Great Basin Spadefoot (Toad)".
func (r Record) Title() string {
	if r.Type == "" {
		return r.Name
	}
	return r.Name + " (" + r.Type + ")"
}
