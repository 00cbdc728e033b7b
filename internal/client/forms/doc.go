// Package forms holds the client-side form logic: field patterns, time
// conversion, attendance arithmetic and validated input structs for every
// submission. Validation runs before any request is made; failures come back
// as ValidationErrors, one human-readable line per problem.
package forms
