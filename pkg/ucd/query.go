package ucd

import "fmt"

// Query is the dynamic-dispatch entry point spec §6 describes for
// callers that only know a property name at runtime (the CLI's `query`
// subcommand is the only consumer of this in this module — everything
// else should call the named GetXxx accessor directly, since that is
// both faster and typed). name may be a canonical property name or any
// alias known to ResolveProperty.
func Query(name string, cp rune) (any, error) {
	id, ok := ResolveProperty(name)
	if !ok {
		return nil, fmt.Errorf("ucd: unknown property %q", name)
	}
	cp = NormalizeCodePoint(cp)
	switch id {
	case PropGeneralCategory:
		return GetGeneralCategory(cp), nil
	case PropCanonicalCombiningClass:
		return GetCanonicalCombiningClass(cp), nil
	case PropBidiClass:
		return GetBidiClass(cp), nil
	case PropBidiPairedBracketType:
		return GetBidiPairedBracketType(cp), nil
	case PropBidiMirrored:
		return GetBidiMirrored(cp), nil
	case PropBidiControl:
		return GetBidiControl(cp), nil
	case PropBidiMirroringGlyph:
		return GetBidiMirroringGlyph(cp), nil
	case PropDecompositionType:
		return GetDecompositionType(cp), nil
	case PropDecompositionMapping:
		return GetDecompositionMapping(cp), nil
	case PropEastAsianWidth:
		return GetEastAsianWidth(cp), nil
	case PropGraphemeClusterBreak:
		return GetGraphemeClusterBreak(cp), nil
	case PropSentenceBreak:
		return GetSentenceBreak(cp), nil
	case PropWordBreak:
		return GetWordBreak(cp), nil
	case PropHangulSyllableType:
		return GetHangulSyllableType(cp), nil
	case PropIndicPositionalCategory:
		return GetIndicPositionalCategory(cp), nil
	case PropIndicSyllabicCategory:
		return GetIndicSyllabicCategory(cp), nil
	case PropJoiningGroup:
		return GetJoiningGroup(cp), nil
	case PropJoiningType:
		return GetJoiningType(cp), nil
	case PropLineBreak:
		return GetLineBreak(cp), nil
	case PropNFCQuickCheck:
		return GetNFCQuickCheck(cp), nil
	case PropNFDQuickCheck:
		return GetNFDQuickCheck(cp), nil
	case PropNFKCQuickCheck:
		return GetNFKCQuickCheck(cp), nil
	case PropNFKDQuickCheck:
		return GetNFKDQuickCheck(cp), nil
	case PropNumericType:
		return GetNumericType(cp), nil
	case PropNumericValue:
		return GetNumericValue(cp), nil
	case PropVerticalOrientation:
		return GetVerticalOrientation(cp), nil
	case PropScript:
		return GetScript(cp), nil
	case PropScriptExtensions:
		return GetScriptExtensions(cp), nil
	case PropBlock:
		return GetBlock(cp), nil
	case PropAge:
		return GetAge(cp), nil
	case PropWhiteSpace:
		return GetWhiteSpace(cp), nil
	case PropAlphabetic:
		return GetAlphabetic(cp), nil
	case PropASCIIHexDigit:
		return GetASCIIHexDigit(cp), nil
	case PropUppercase:
		return GetUppercase(cp), nil
	case PropLowercase:
		return GetLowercase(cp), nil
	case PropSimpleUppercaseMapping:
		return GetSimpleUppercaseMapping(cp), nil
	case PropSimpleLowercaseMapping:
		return GetSimpleLowercaseMapping(cp), nil
	case PropSimpleTitlecaseMapping:
		return GetSimpleTitlecaseMapping(cp), nil
	case PropSimpleCaseFolding:
		return GetSimpleCaseFolding(cp), nil
	case PropUppercaseMapping:
		return GetUppercaseMapping(cp), nil
	case PropLowercaseMapping:
		return GetLowercaseMapping(cp), nil
	case PropTitlecaseMapping:
		return GetTitlecaseMapping(cp), nil
	case PropCaseFolding:
		return GetCaseFolding(cp), nil
	case PropNFKCCasefold:
		return GetNFKCCasefold(cp), nil
	case PropName:
		return GetName(cp), nil
	default:
		return nil, fmt.Errorf("ucd: property %q has no dispatch entry", name)
	}
}
