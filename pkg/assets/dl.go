package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"path"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewDownloader(dir string, logger *zap.Logger) (*Downloader, error) {
	d := &Downloader{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	if dir == "" {
		return d, nil
	}

	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}

	d.fs = afero.NewBasePathFs(fs, dir)
	return d, nil
}

// Downloader fetches mask images over HTTP, keeping a local copy when a
// cache dir is configured.
type Downloader struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

func (d *Downloader) filename(rawURL string) string {
	u, _ := url.Parse(rawURL)
	return path.Base(u.Path)
}

// Get returns the raw bytes for an image URL, from cache when possible.
func (d *Downloader) Get(rawURL string) ([]byte, error) {
	file := d.filename(rawURL)

	if d.fs != nil {
		if exists, err := afero.Exists(d.fs, file); err != nil {
			return nil, err
		} else if exists {
			return afero.ReadFile(d.fs, file)
		}
	}

	resp, err := d.cli.R().Get(rawURL)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", file))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}

	bs := buf.Bytes()

	if d.fs != nil {
		if err := afero.WriteFile(d.fs, file, bs, 0644); err != nil {
			return nil, err
		}
	}

	d.log.With(
		zap.String("url", rawURL),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
	).Debug("asset fetched")

	return bs, nil
}

// Fetch downloads and decodes an image, fitted to w x h in the requested
// asset format.
func (d *Downloader) Fetch(rawURL string, w, h int, format Format) (*Image, error) {
	bs, err := d.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewBuffer(bs))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	return Fit(img, w, h, format), nil
}
