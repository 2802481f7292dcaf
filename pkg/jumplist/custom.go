package jumplist

import (
	"fmt"

	"github.com/joshuapare/jumpkit/internal/buf"
	"github.com/joshuapare/jumpkit/internal/format"
	"github.com/joshuapare/jumpkit/pkg/types"
)

// decodeCustom walks a CustomDestinations file with a single forward
// cursor. The container carries no length field for its blobs, so the
// cursor advances by exactly the count the shell link delegate reports;
// once the delegate fails, the next record boundary is unknowable and
// decoding of this file stops with whatever was recovered.
func decodeCustom(b []byte, file *types.File, dec types.LinkDecoder) error {
	head, err := format.ParseCustDestHeader(b)
	if err != nil {
		return wrapFormatErr("customdestinations header", err)
	}
	file.Version = head.Version

	cur := format.CustDestHeaderSize
	for i := 0; i < int(head.CategoryCount); i++ {
		if cur >= len(b) {
			file.Errs = append(file.Errs, &types.Error{
				Kind: types.ErrKindTruncated,
				Msg:  fmt.Sprintf("file ends before category %d of %d", i, head.CategoryCount),
			})
			return nil
		}
		if format.IsSeparator(b[cur:]) {
			// Footer reached early: fewer categories than declared.
			file.Errs = append(file.Errs, &types.Error{
				Kind: types.ErrKindTruncated,
				Msg:  fmt.Sprintf("footer after %d of %d categories", i, head.CategoryCount),
			})
			return nil
		}

		ch, n, err := format.ParseCategoryHeader(b[cur:])
		if err != nil {
			file.Errs = append(file.Errs, wrapFormatErr(
				fmt.Sprintf("category %d header at offset %d", i, cur), err))
			return nil
		}
		cur += n

		cat := types.Category{Type: ch.Type.String()}
		switch ch.Type {
		case format.CategoryCustom:
			cat.Name = ch.Name
		case format.CategoryKnown:
			cat.ID = format.KnownCategoryName(ch.KnownID)
		}
		file.Categories = append(file.Categories, cat)

		for j := 0; j < int(ch.EntryCount); j++ {
			if !buf.Has(b, cur, format.GUIDSize) {
				file.Errs = append(file.Errs, &types.Error{
					Kind: types.ErrKindTruncated,
					Msg:  fmt.Sprintf("category %q truncated before blob %d", catName(cat), j),
				})
				return nil
			}
			if !format.IsShellLinkCLSID(b[cur:]) {
				// Not a shell link: without its length the rest of the
				// file cannot be framed.
				file.Errs = append(file.Errs, &types.Error{
					Kind: types.ErrKindFormat,
					Msg:  fmt.Sprintf("category %q blob %d: %v", catName(cat), j, format.ErrBadCLSID),
					Err:  format.ErrBadCLSID,
				})
				return nil
			}
			cur += format.GUIDSize

			rec, n, err := dec.Decode(b[cur:])
			if err != nil {
				file.Entries = append(file.Entries, types.Entry{
					Order:    len(file.Entries),
					Category: &cat,
					Err: &types.Error{
						Kind: types.ErrKindMalformedBlob,
						Msg:  fmt.Sprintf("shell link at offset %d", cur),
						Err:  err,
					},
				})
				return nil
			}
			// A consumed count outside the remaining bytes breaks the
			// cursor contract; the boundary is as lost as on a decode
			// failure.
			if n < 0 || n > len(b)-cur {
				file.Entries = append(file.Entries, types.Entry{
					Order:    len(file.Entries),
					Category: &cat,
					Err: &types.Error{
						Kind: types.ErrKindMalformedBlob,
						Msg:  fmt.Sprintf("shell link at offset %d: consumed %d of %d bytes", cur, n, len(b)-cur),
					},
				})
				return nil
			}
			cur += n
			file.Entries = append(file.Entries, types.Entry{
				Order:    len(file.Entries),
				Category: &cat,
				Link:     rec,
			})
		}

		switch {
		case format.IsSeparator(b[cur:]):
			cur += 4
		case cur >= len(b):
			file.Errs = append(file.Errs, &types.Error{
				Kind: types.ErrKindTruncated,
				Msg:  fmt.Sprintf("missing footer after category %q", catName(cat)),
			})
			return nil
		default:
			// The delegate consumed a plausible blob but did not land on
			// a separator; the cursor is lost.
			file.Errs = append(file.Errs, &types.Error{
				Kind: types.ErrKindFormat,
				Msg:  fmt.Sprintf("no separator at offset %d after category %q", cur, catName(cat)),
			})
			return nil
		}
	}
	return nil
}

func catName(c types.Category) string {
	if c.Name != "" {
		return c.Name
	}
	if c.ID != "" {
		return c.ID
	}
	return c.Type
}
