// Package media provides lightweight inspection of generated media payloads.
//
// When the Gemini API returns binary image data, the server reports the
// image's pixel dimensions alongside its MIME type and byte size. Inspect
// performs that decode. It is best-effort: payloads that are not decodable
// images (audio, video) simply report no dimensions.
package media
