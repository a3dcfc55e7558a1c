package gemini

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: every extension in the inference table maps to its MIME type
// regardless of the rest of the path, and any extension outside the table
// falls back to application/octet-stream.
func TestMimeInferenceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	knownExtensions := make([]interface{}, 0, len(mimeByExtension))
	for ext := range mimeByExtension {
		knownExtensions = append(knownExtensions, ext)
	}

	genBaseName := gen.AlphaString().SuchThat(func(s string) bool {
		return s != "" && !strings.Contains(s, ".")
	})

	properties.Property("known extensions map through the table", prop.ForAll(
		func(base string, ext string) bool {
			return mimeForPath("/media/"+base+ext) == mimeByExtension[ext]
		},
		genBaseName,
		gen.OneConstOf(knownExtensions...),
	))

	properties.Property("unknown extensions fall back to octet-stream", prop.ForAll(
		func(base string, ext string) bool {
			if _, known := mimeByExtension["."+strings.ToLower(ext)]; known {
				return true // skip the rare collision with a table entry
			}
			return mimeForPath("/media/"+base+"."+ext) == fallbackMIME
		},
		genBaseName,
		gen.AlphaString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.Property("inference is case-insensitive", prop.ForAll(
		func(base string, ext string) bool {
			return mimeForPath("/media/"+base+strings.ToUpper(ext)) == mimeByExtension[ext]
		},
		genBaseName,
		gen.OneConstOf(knownExtensions...),
	))

	properties.TestingRun(t)
}

// Property: appending the output extension is idempotent and always leaves
// the name with the right suffix for MIME types in the table.
func TestEnsureExtensionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	knownMIMEs := make([]interface{}, 0, len(extensionByMIME))
	for mimeType := range extensionByMIME {
		knownMIMEs = append(knownMIMEs, mimeType)
	}

	genName := gen.AlphaString().SuchThat(func(s string) bool { return s != "" })

	properties.Property("result carries the expected suffix", prop.ForAll(
		func(name string, mimeType string) bool {
			got := ensureExtension(name, mimeType)
			return strings.HasSuffix(strings.ToLower(got), extensionByMIME[mimeType])
		},
		genName,
		gen.OneConstOf(knownMIMEs...),
	))

	properties.Property("appending twice never double-appends", prop.ForAll(
		func(name string, mimeType string) bool {
			once := ensureExtension(name, mimeType)
			return ensureExtension(once, mimeType) == once
		},
		genName,
		gen.OneConstOf(knownMIMEs...),
	))

	properties.TestingRun(t)
}
