// Package organize relocates media files from the source root into the
// date-bucketed library layout: <target>/<decade>/<year>/<year>-<month>
// with an optional location suffix pulled from the source folder name.
package organize
