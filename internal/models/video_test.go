package models

import "testing"

func TestVideoAssetNormalize(t *testing.T) {
	v := &VideoAsset{
		Title:       "  My FIRST Video  ",
		Description: "\tSome DESCRIPTION\n",
	}
	v.Normalize()

	if v.Title != "my first video" {
		t.Errorf("unexpected title %q", v.Title)
	}
	if v.Description != "some description" {
		t.Errorf("unexpected description %q", v.Description)
	}
}

func TestVideoAssetPrepareCreate(t *testing.T) {
	v := &VideoAsset{
		Title:       "Already Watched",
		Views:       1000,
		IsPublished: true,
	}
	v.PrepareCreate()

	if v.Views != 0 {
		t.Errorf("expected views reset, got %d", v.Views)
	}
	if v.IsPublished {
		t.Error("expected new record to start unpublished")
	}
	if v.Title != "already watched" {
		t.Errorf("unexpected title %q", v.Title)
	}
}
