// Command photokeep organizes a photo and video archive: it files incoming
// media into a date-bucketed library, stamps capture timestamps into file
// names, backfills dates on scanned legacy photos, and quarantines
// thumbnail-sized junk.
package main
