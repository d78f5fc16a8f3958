package handlers

// normalizeReturnTo keeps the post-login redirect on this site. Only
// relative paths pass; anything protocol-relative or with a scheme is an
// open-redirect attempt and is dropped.
func normalizeReturnTo(s string) string {
	if s == "" || s[0] != '/' {
		return ""
	}
	if len(s) >= 2 && s[0:2] == "//" {
		return ""
	}
	if containsScheme(s) {
		return ""
	}
	return s
}

func containsScheme(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == ':' && s[i+1] == '/' && s[i+2] == '/' {
			return true
		}
	}
	return false
}
