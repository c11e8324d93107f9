package collection

import (
	"context"
	"errors"
)

// ErrPickCanceled is returned by pickers when the user backs out
var ErrPickCanceled = errors.New("image selection canceled")

// Media is what an image picker hands back. Only the URL is consumed.
type Media struct {
	URL string
}

// ImagePicker is the host capability that lets the user choose an image.
// Completion may arrive after other edits have happened.
type ImagePicker interface {
	Pick(ctx context.Context) (Media, error)
}

// ImagePickerFunc adapts a function to ImagePicker
type ImagePickerFunc func(ctx context.Context) (Media, error)

func (f ImagePickerFunc) Pick(ctx context.Context) (Media, error) {
	return f(ctx)
}

// StaticPicker always returns the same URL. The CLI uses it for --image.
type StaticPicker string

func (p StaticPicker) Pick(ctx context.Context) (Media, error) {
	if err := ctx.Err(); err != nil {
		return Media{}, err
	}
	return Media{URL: string(p)}, nil
}
