// Package imagesource decodes uploaded image files into references the
// framing controller can display, plus thumbnails for terminal previews.
package imagesource
