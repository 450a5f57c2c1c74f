package scan

// Package scan discovers photos on disk and builds the classified pool the
// selection engine works from. Dimensions come from image headers without
// full decodes; capture dates come from EXIF with a file-mtime fallback.
