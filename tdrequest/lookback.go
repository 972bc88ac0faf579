package tdrequest

// OutputSizeForDays estimates how many bars of interval cover the last days
// calendar days, plus a 10% margin, clamped to [MinOutputSize, MaxOutputSize].
func OutputSizeForDays(interval Interval, days int) uint16 {
	if days < 1 {
		days = 1
	}

	var perDay float64
	switch interval {
	case Minutes1:
		perDay = 24 * 60
	case Minutes5:
		perDay = 24 * 12
	case Minutes15:
		perDay = 24 * 4
	case Minutes30:
		perDay = 24 * 2
	case Minutes45:
		perDay = 24 * 60 / 45
	case Hours1:
		perDay = 24
	case Hours2:
		perDay = 12
	case Hours4:
		perDay = 6
	case Days1:
		perDay = 1
	case Weeks1:
		perDay = 1.0 / 7
	case Months1:
		perDay = 1.0 / 30
	}

	n := perDay * float64(days) * 1.1
	switch {
	case n < MinOutputSize:
		return MinOutputSize
	case n > MaxOutputSize:
		return MaxOutputSize
	}
	return uint16(n)
}
