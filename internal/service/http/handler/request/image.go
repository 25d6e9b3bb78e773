package request

import (
	"fmt"
	"mime/multipart"
	"time"
)

const ExpireDefault = "168h"

type UploadImage struct {
	File *multipart.FileHeader `form:"file"` // preferred over url when both set
	URL  string                `form:"url"`

	OnlineFileName    string `form:"-"`
	OnlineFileContent []byte `form:"-"`
}

func (u *UploadImage) Valid() error {
	if u.File == nil && u.URL == "" {
		return fmt.Errorf("must fill file or url")
	}
	return nil
}

type GetImage struct {
	ID        int    `form:"id"`
	Type      string `form:"type"`      // input or output
	Expire    string `form:"expire"`    // presign lifetime, default 168h
	Thumbnail bool   `form:"thumbnail"` // output only
}

func (g *GetImage) CacheKey() string {
	return fmt.Sprintf("image_get_%d_%s_%s_%v", g.ID, g.Type, g.Expire, g.Thumbnail)
}

func (g *GetImage) Valid() error {
	if g.ID <= 0 {
		return fmt.Errorf("invalid ID: %d, must be greater than 0", g.ID)
	}
	if g.Type != "input" && g.Type != "output" {
		return fmt.Errorf("invalid type: %s, must be 'input' or 'output'", g.Type)
	}
	if g.Expire != "" {
		if _, err := time.ParseDuration(g.Expire); err != nil {
			return fmt.Errorf("invalid expire duration: %s", g.Expire)
		}
	}
	if g.Type != "output" && g.Thumbnail {
		return fmt.Errorf("thumbnail option is only valid for output images")
	}
	return nil
}

func (g *GetImage) FullWithDefault() {
	if g.Expire == "" {
		g.Expire = ExpireDefault
	}
}
