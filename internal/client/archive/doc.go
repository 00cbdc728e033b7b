// Package archive stores exported files (meeting PDFs, recruitment
// spreadsheets) either in a local directory or in an S3-compatible bucket.
package archive
