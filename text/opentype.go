package text

import (
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

var (
	tagHead = ot.MustNewTag("head")
	tagOS2  = ot.MustNewTag("OS/2")
	tagFvar = ot.MustNewTag("fvar")
)

// OS/2 fsSelection bits.
const (
	fsSelectionItalic  = 1 << 0
	fsSelectionBold    = 1 << 5
	fsSelectionRegular = 1 << 6
	fsSelectionOblique = 1 << 9
)

// readOS2 parses the OS/2 table of ld, if present.
func readOS2(ld *ot.Loader) (tables.Os2, bool) {
	raw, err := ld.RawTable(tagOS2)
	if err != nil {
		return tables.Os2{}, false
	}
	os2, _, err := tables.ParseOs2(raw)
	if err != nil {
		return tables.Os2{}, false
	}
	return os2, true
}

// hasVariationAxes reports whether ld has an fvar table with at least one axis.
func hasVariationAxes(ld *ot.Loader) bool {
	raw, err := ld.RawTable(tagFvar)
	if err != nil {
		return false
	}
	fvar, _, err := tables.ParseFvar(raw)
	return err == nil && len(fvar.Axis) > 0
}

func flagsFromSelection(sel uint16) StyleFlags {
	var flags StyleFlags
	if sel&fsSelectionRegular != 0 {
		flags |= FlagRegular
	}
	if sel&fsSelectionItalic != 0 {
		flags |= FlagItalic
	}
	if sel&fsSelectionBold != 0 {
		flags |= FlagBold
	}
	if sel&fsSelectionOblique != 0 {
		flags |= FlagOblique
	}
	return flags
}
