// Package legacy reads alarm definitions from the relational database used by
// earlier releases. Rows are consumed exactly once by the migration, which
// deletes each row after importing it.
package legacy
