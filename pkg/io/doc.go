// Package io reads and writes raster images as [bitmap.Bitmap] values.
//
// # Overview
//
// Decoding and encoding are delegated to github.com/disintegration/imaging,
// which picks the format from the file extension on write and sniffs it on
// read. WebP decoding is added by golang.org/x/image/webp.
//
// # Formats
//
//	read:  png, jpg/jpeg, gif, bmp, tif/tiff, webp
//	write: png, jpg/jpeg, gif, bmp, tif/tiff
//
// Every decoded image is flattened to 8-bit RGB. Alpha is dropped, not
// blended, and EXIF orientation is ignored so pixel positions match the
// stored data.
//
// # Import
//
// Use [Open] to read a file, or [Decode] to read from any io.Reader:
//
//	src, err := io.Open("secret.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [Save] to write a file, or [Encode] to write to any io.Writer in a
// named format:
//
//	err := io.Save(result, "result.png")
//
// # Errors
//
// Failures carry FILE_OPEN (read side) or FILE_WRITE (write side) codes from
// [errors] and name the file involved.
//
// [errors]: github.com/matzehuels/pixelgrid/pkg/errors
package io
