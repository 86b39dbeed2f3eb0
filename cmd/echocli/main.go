// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/echo/device"
	"github.com/devblok/echo/gfx/d3d11"
)

var (
	width  = flag.Uint("width", 1280, "Client width to select a refresh rate for")
	height = flag.Uint("height", 720, "Client height to select a refresh rate for")
)

func main() {
	flag.Parse()

	factory, err := d3d11.NewFactory()
	if err != nil {
		log.WithError(err).Fatal("graphics factory unavailable")
	}

	desc, err := device.Describe(factory, uint32(*width), uint32(*height))
	if err != nil {
		log.WithError(err).Fatal("describing devices failed")
	}

	if bytes, err := json.MarshalIndent(desc, "", "  "); err == nil {
		fmt.Printf("%s\n", bytes)
	} else {
		log.WithError(err).Fatal("encoding failed")
	}
}
