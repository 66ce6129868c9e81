// Package exporter provides the grouped artifact export operation: partition
// a table by a group key column, render one artifact per requested key value
// and persist each artifact to a deterministically named destination.
//
// An export is composed of:
// - a [table.Table] which is partitioned by the group key
// - a [render.Renderer] which maps each group's sub-table to an artifact
// - a [destination.NamingFunc] which names each destination from (index, key value)
// - a [destination.Sink] which persists artifacts (file system, S3, GCS)
//
// The ordered key value list is the single source of truth correlating a
// group's data with its destination name - entry i is rendered and written
// to the name produced for index i. Values absent from the list are
// excluded from the export; a value with no matching rows fails the whole
// export before anything is written.
//
// Render and persist failures are per-group: by default they are recorded
// in the returned outcome list and do not abort the batch. Structural
// errors (a missing group, a destination name collision) abort the export
// before any write.
//
// Exports may be defined declaratively in HCL via [JobConfig]:
//
//	group_key         = "cyl"
//	key_values        = ["4", "6", "8"]
//	filename_template = "%{key_value}.png"
//
//	renderer "scatter" {
//	  x = "hp"
//	  y = "mpg"
//	}
//
//	destination "file_system" {
//	  path = "./charts"
//	}
package exporter
