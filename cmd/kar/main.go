// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"flag"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/echo/utility/kar"
)

func init() {
	currentUserName = "unknown"
	if u, err := user.Current(); err == nil {
		currentUserName = u.Name
	}
}

var (
	currentUserName string
	author          = flag.String("author", "", "Set the author of the package when compressing (default current user)")
	version         = flag.Int64("version", 1, "Archive version number to create it with")
	extract         = flag.String("e", "", "Extract the file given")
	compress        = flag.String("c", "", "Compress the given file/folder")
	dstFile         = flag.String("f", "out.kar", "Destination file, or directory when extracting")
	silent          = flag.Bool("s", false, "Silent")
)

func main() {
	var opMade bool
	flag.Parse()

	if *extract != "" && *compress != "" {
		log.Fatal("only one operation at a time")
	}

	if *extract != "" {
		opMade = true
		if err := extractFiles(); err != nil {
			log.WithError(err).Fatal("extraction failed")
		}
	}

	if *compress != "" {
		opMade = true
		if err := compressFiles(); err != nil {
			log.WithError(err).Fatal("compression failed")
		}
	}

	if !opMade {
		flag.PrintDefaults()
	}
}

func newProgressBar(max int, description string) *progressbar.ProgressBar {
	if *silent {
		return progressbar.DefaultSilent(int64(max), description)
	}
	return progressbar.Default(int64(max), description)
}

func compressFiles() error {
	if _, err := os.Stat(*dstFile); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	var filesToCompress []string
	if err := filepath.Walk(*compress, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		filesToCompress = append(filesToCompress, path)
		return nil
	}); err != nil {
		return err
	}

	name := *author
	if name == "" {
		name = currentUserName
	}
	karBuilder, err := kar.NewBuilder(kar.Header{
		Author:      name,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})
	if err != nil {
		return err
	}
	defer karBuilder.Close()

	bar := newProgressBar(len(filesToCompress), "compressing")
	defer bar.Close()

	var (
		wg       sync.WaitGroup
		mutex    sync.Mutex
		firstErr error
		paths    = make(chan string)
	)
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				if err := addFile(karBuilder, path); err != nil {
					mutex.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mutex.Unlock()
				}
				bar.Add(1)
			}
		}()
	}
	for _, path := range filesToCompress {
		paths <- path
	}
	close(paths)
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	dst, err := os.Create(*dstFile)
	if err != nil {
		return err
	}
	if _, err := karBuilder.WriteTo(dst); err != nil {
		dst.Close()
		os.Remove(*dstFile)
		return err
	}
	log.WithFields(log.Fields{
		"files":   karBuilder.Len(),
		"archive": *dstFile,
	}).Info("archive written")
	return dst.Close()
}

// addFile stores path under its slash separated name relative to the compressed root.
func addFile(b *kar.Builder, path string) error {
	rel, err := filepath.Rel(*compress, path)
	if err != nil || rel == "." {
		rel = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.Add(filepath.ToSlash(rel), f)
}

func extractFiles() error {
	archive, err := kar.OpenFile(*extract)
	if err != nil {
		return err
	}
	defer archive.Close()

	dstDir := *dstFile
	if dstDir == "out.kar" {
		dstDir = "."
	}

	names := archive.Names()
	bar := newProgressBar(len(names), "extracting")
	defer bar.Close()

	for _, name := range names {
		clean := filepath.Clean(filepath.FromSlash(name))
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return errors.New("entry escapes destination: " + name)
		}
		target := filepath.Join(dstDir, clean)

		data, err := archive.ReadAll(name)
		if err != nil {
			return errors.New(name + ": " + err.Error())
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return err
		}
		bar.Add(1)
	}
	return nil
}
