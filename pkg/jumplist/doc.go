// Package jumplist decodes Windows jumplist artifacts into structured,
// queryable records.
//
// A jumplist exists in two incompatible container shapes. AutomaticDestinations
// files are compound file containers holding a DestList metadata stream plus
// one shell link blob per entry; CustomDestinations files are a flat
// concatenation of category headers and shell link blobs delimited only by
// the blobs' own structure. Classify tells the shapes apart, Parse decodes
// either, and Normalize projects the result onto a flat canonical schema.
//
// Decoding is best effort: forensic inputs are routinely carved,
// truncated, or partially overwritten, so per-entry failures are attached to
// the affected entry and never discard the rest of the file.
//
//	f, err := jumplist.ParseFile("9b9cdc69c1c24e2b.automaticDestinations-ms", nil)
//	if err != nil {
//		// the whole file was undecodable
//	}
//	for _, e := range f.Entries {
//		if e.Err != nil {
//			continue
//		}
//		fmt.Println(e.Link.TargetPath)
//	}
//
// Decoding one file is single-threaded; distinct files are independent and
// may be decoded concurrently.
package jumplist
