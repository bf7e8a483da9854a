package generation

// HistoricalPeriod labels the era a brand was founded in.
// Boundaries are half-open: 1644 is already Qing, 1912 Republican, and so on.
func HistoricalPeriod(year int) string {
	switch {
	case year < 1644:
		return "明朝末年"
	case year < 1912:
		return "清朝时期"
	case year < 1949:
		return "民国时期"
	case year < 1978:
		return "新中国初期"
	default:
		return "改革开放时期"
	}
}
