package bc2

// TransformWithSettings applies settings to a BC2-block-shaped input,
// writing the rearranged bytes to output (spec.md §4.5, C5 for BC2).
// Output must be at least as long as input; len(input) must be an exact
// multiple of 16.
func TransformWithSettings(input, output []byte, settings Settings) error {
	n, err := validate(input, output)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if settings.DecorrelationMode == None && !settings.SplitColourEndpoints {
		splitStandard(input, output, n)
		return nil
	}
	splitFused(input, output, n, settings.DecorrelationMode, settings.SplitColourEndpoints)
	return nil
}

// UntransformWithSettings reverses TransformWithSettings.
func UntransformWithSettings(input, output []byte, settings Settings) error {
	n, err := validate(input, output)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if settings.DecorrelationMode == None && !settings.SplitColourEndpoints {
		unsplitStandard(input, output, n)
		return nil
	}
	unsplitFused(input, output, n, settings.DecorrelationMode, settings.SplitColourEndpoints)
	return nil
}

func validate(input, output []byte) (blockCount int, err error) {
	if len(input)%blockSize != 0 {
		return 0, invalidLengthError(len(input))
	}
	if len(output) < len(input) {
		return 0, outputTooSmallError(len(input), len(output))
	}
	return len(input) / blockSize, nil
}
