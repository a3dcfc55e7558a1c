package gemini

import (
	"testing"
)

func TestMimeForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/media/photo.jpg", "image/jpeg"},
		{"/media/photo.jpeg", "image/jpeg"},
		{"/media/photo.png", "image/png"},
		{"/media/anim.gif", "image/gif"},
		{"/media/photo.webp", "image/webp"},
		{"/media/clip.mp4", "video/mp4"},
		{"/media/clip.mpeg", "video/mpeg"},
		{"/media/clip.mov", "video/mov"},
		{"/media/clip.avi", "video/avi"},
		{"/media/clip.webm", "video/webm"},
		{"/media/song.mp3", "audio/mp3"},
		{"/media/song.wav", "audio/wav"},
		{"/media/song.aac", "audio/aac"},
		{"/media/data.xyz", "application/octet-stream"},
		{"/media/noext", "application/octet-stream"},
		{"/media/photo.PNG", "image/png"},
		{"/media/SONG.MP3", "audio/mp3"},
		{"/media/archive.tar.gz", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := mimeForPath(tt.path); got != tt.want {
				t.Errorf("mimeForPath(%s): got %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtensionForMIME(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"audio/mp3", ".mp3"},
		{"video/webm", ".webm"},
		{"application/octet-stream", ""},
		{"text/plain", ""},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := extensionForMIME(tt.mimeType); got != tt.want {
				t.Errorf("extensionForMIME(%s): got %s, want %s", tt.mimeType, got, tt.want)
			}
		})
	}
}

func TestEnsureExtension(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		mimeType string
		want     string
	}{
		{"appended when missing", "picture", "image/png", "picture.png"},
		{"kept when present", "picture.png", "image/png", "picture.png"},
		{"kept when uppercase", "picture.PNG", "image/png", "picture.PNG"},
		{"different extension appended", "picture.txt", "image/png", "picture.txt.png"},
		{"unknown mime appends nothing", "blob.bin", "application/octet-stream", "blob.bin"},
		{"jpeg normalizes to jpg", "photo", "image/jpeg", "photo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ensureExtension(tt.file, tt.mimeType); got != tt.want {
				t.Errorf("ensureExtension(%s, %s): got %s, want %s", tt.file, tt.mimeType, got, tt.want)
			}
		})
	}
}
