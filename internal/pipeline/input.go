package pipeline

// inputKind tags which request field drives generation. Resolving it once
// up front removes any ambiguity about which branch wins when several
// fields are present.
type inputKind int

const (
	inputNone inputKind = iota
	inputTexts
	inputPrompt
	inputImage
)

// resolveInput picks the driving input: an image wins over an explicit
// prompt, which wins over canvas texts. Flows without a prompt concept pass
// hasPrompt=false.
func resolveInput(hasImage, hasPrompt, hasTexts bool) inputKind {
	switch {
	case hasImage:
		return inputImage
	case hasPrompt:
		return inputPrompt
	case hasTexts:
		return inputTexts
	default:
		return inputNone
	}
}
