package mime

import "strings"

var Extension = map[string]MIME{
	".txt":  Plain,
	".html": HTML,
	".htm":  HTML,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".png":  PNG,
	".css":  CSS,
	".js":   JAVASCRIPT,
}

// Resolve infers the MIME type from the extension of the file, the part after its
// last dot. Lookup is case-sensitive. Files without an extension, as well as
// unknown extensions, are Plain
func Resolve(filename string) MIME {
	if slash := strings.LastIndexAny(filename, `/\`); slash != -1 {
		filename = filename[slash+1:]
	}

	dot := strings.LastIndexByte(filename, '.')
	if dot == -1 {
		return Plain
	}

	if mime, found := Extension[filename[dot:]]; found {
		return mime
	}

	return Plain
}
