// Package clip loads audio files and turns them into base64 payloads.
//
// It is the leaf dependency shared by the forensics panel (which ships the
// raw bytes to the inference engine) and the endpoint tester (which fills
// its wire payload with the base64 text). Encoding is deterministic and has
// no side effects beyond the file read; any read failure surfaces as an
// *EncodingError.
//
// MIME types are detected from content with gabriel-vasile/mimetype so that
// clips work regardless of their file extension.
package clip
