package ui

// ColorRed returns the escape code for errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the escape code for success.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the escape code for warnings.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the escape code for primary figures.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the escape code for timings.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorGrey returns the escape code for secondary text.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the escape code for underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
