package avurl

import "strings"

// parts is the lossless result of split; join rebuilds the input.
type parts struct {
	scheme, userinfo, host, port, path string

	hasScheme bool
	slashes   int
	hasAt     bool
	brackets  bool
	hasPort   bool
	junk      string // bytes between ']' and the path
}

func (p parts) join() string {
	var b strings.Builder
	b.WriteString(p.scheme)
	if p.hasScheme {
		b.WriteByte(':')
	}
	b.WriteString(strings.Repeat("/", p.slashes))
	b.WriteString(p.userinfo)
	if p.hasAt {
		b.WriteByte('@')
	}
	if p.brackets {
		b.WriteString("[" + p.host + "]")
	} else {
		b.WriteString(p.host)
	}
	if p.hasPort {
		b.WriteByte(':')
	}
	b.WriteString(p.port)
	b.WriteString(p.junk)
	b.WriteString(p.path)
	return b.String()
}

// split mirrors av_url_split without buffer truncation. A string with no ':'
// is all path.
func split(url string) (p parts) {
	colon := strings.IndexByte(url, ':')
	if colon == -1 {
		p.path = url
		return p
	}
	p.hasScheme = true
	p.scheme = url[:colon]

	cur := colon + 1
	for p.slashes < 2 && cur < len(url) && url[cur] == '/' {
		cur++
		p.slashes++
	}
	if cur == len(url) {
		return p
	}

	end := len(url)
	if i := strings.IndexAny(url[cur:], "/?#"); i != -1 {
		end = cur + i
	}
	p.path = url[end:]
	if end == cur {
		return p
	}

	// userinfo runs to the last '@' of the authority.
	if at := strings.LastIndexByte(url[cur:end], '@'); at != -1 {
		p.hasAt = true
		p.userinfo = url[cur : cur+at]
		cur += at + 1
		if cur == end {
			return p
		}
	}

	authority := url[cur:end]
	switch {
	case authority[0] == '[' && strings.IndexByte(authority, ']') != -1:
		closing := strings.IndexByte(authority, ']')
		p.brackets = true
		p.host = authority[1:closing]
		rest := authority[closing+1:]
		if strings.HasPrefix(rest, ":") {
			p.hasPort = true
			p.port = rest[1:]
		} else {
			p.junk = rest
		}
	case strings.IndexByte(authority, ':') != -1:
		i := strings.IndexByte(authority, ':')
		p.hasPort = true
		p.host = authority[:i]
		p.port = authority[i+1:]
	default:
		p.host = authority
	}
	return p
}
