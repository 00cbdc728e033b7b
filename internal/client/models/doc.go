// Package models defines the client-side records exchanged with the chapter
// REST API and the locally held session.
//
// Records mirror the backend serializers' JSON field names. Fields the CLI
// never reads are left out and ignored on decode.
package models
