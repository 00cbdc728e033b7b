// Package view renders chapter records for the terminal: tables for lists,
// labelled cards for single records and a bar chart for attendance.
//
// Colors follow the selected theme and are switched off automatically when
// output is not a terminal.
package view
