// Command compress writes a brotli-compressed copy of the viewer's WASM
// binary next to it, for the asset server to send to clients that accept br.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/sirupsen/logrus"
)

func main() {
	in := flag.String("in", "gui/html/eeviewer.wasm", "file to compress")
	out := flag.String("out", "", "output file; defaults to the input file with a .br suffix")
	flag.Parse()
	if *out == "" {
		*out = *in + ".br"
	}
	if err := compress(*in, *out); err != nil {
		logrus.WithError(err).Fatal("compress failed")
	}
	logrus.WithField("file", *out).Info("compressed")
}

func compress(in, out string) error {
	r, err := os.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	wb := brotli.NewWriterLevel(w, brotli.BestCompression)
	if _, err := io.Copy(wb, r); err != nil {
		w.Close()
		return err
	}
	if err := wb.Close(); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
