package postgres

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}
