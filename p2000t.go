// This file is part of P2000T.
//
// P2000T is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// P2000T is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with P2000T.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/digest"
	"github.com/jetsetilly/p2000t/hardware"
	"github.com/jetsetilly/p2000t/hardware/cassette"
	"github.com/jetsetilly/p2000t/hardware/keyboard"
	"github.com/jetsetilly/p2000t/hardware/preferences"
	"github.com/jetsetilly/p2000t/logger"
	"github.com/jetsetilly/p2000t/modalflag"
	"github.com/jetsetilly/p2000t/monitor"
	"github.com/jetsetilly/p2000t/performance"
	"github.com/jetsetilly/p2000t/prefs"
	"github.com/jetsetilly/p2000t/statsview"
	"github.com/jetsetilly/p2000t/version"
	"github.com/jetsetilly/p2000t/wavwriter"
)

// communication between the main() function and the launch() function
type mainSync struct {
	// the value to use with os.Exit()
	quit chan int
}

func main() {
	sync := &mainSync{
		quit: make(chan int),
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	exitVal := 0

	select {
	case <-intChan:
		fmt.Println("\r")
	case exitVal = <-sync.quit:
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("MONITOR", "RENDER", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- 0
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- 10
		return
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitorMode(md)
	case "RENDER":
		err = renderMode(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = versionMode(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.quit <- 20
		return
	}

	sync.quit <- 0
}

// loadPreferences with the command line preferences applied. the command
// line preferences take priority over the preferences file
func loadPreferences(cmdline string) (*preferences.Preferences, error) {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "p2000t", "unused command line preferences: %s", unused)
			}
		}()
	}
	return preferences.NewPreferences()
}

func setEcho(log bool, p *preferences.Preferences) {
	if log || p.LogEcho.Get().(bool) {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

func monitorMode(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	cmdline := md.AddString("prefs", "", "command line preferences (eg. cassette.forward::wound)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	beeper := md.AddString("beeper", "", "record beeper to wav file")
	md.AdditionalHelp("An optional lua script is run before the first prompt.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	pr, err := loadPreferences(*cmdline)
	if err != nil {
		return err
	}
	setEcho(*log, pr)

	if *stats {
		statsview.Launch(os.Stdout)
	}

	// the speaker output is always hashed for the DIGEST AUDIO command
	dig := digest.NewAudio()
	spk := hardware.Speakers{dig}

	if *beeper != "" {
		bp, err := wavwriter.NewBeeper(*beeper)
		if err != nil {
			return err
		}
		spk = append(spk, bp)

		// the recording is written even if the monitor ends with an error
		defer func() {
			if err := bp.EndMixing(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	kbd := keyboard.NewMatrix()

	m, err := hardware.NewP2000T(pr, kbd, spk, nil)
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(m, kbd, os.Stdout)
	mon.AttachAudioDigest(dig)

	fmt.Println(version.String())

	if script := md.GetArg(0); script != "" {
		if _, err := mon.ProcessCommand("SCRIPT " + script); err != nil {
			return err
		}
	}

	input := monitor.NewInput(os.Stdin)
	defer input.Close()

	return mon.Run(input)
}

func renderMode(md *modalflag.Modes) error {
	md.NewMode()

	cmdline := md.AddString("prefs", "", "command line preferences (eg. cassette.length::1024)")
	fill := md.AddString("fill", "", "fill the tape with a pattern before rendering (zero, one, alternate, random)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("wav file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	pr, err := loadPreferences(*cmdline)
	if err != nil {
		return err
	}
	setEcho(*log, pr)

	m, err := hardware.NewP2000T(pr, nil, nil, nil)
	if err != nil {
		return err
	}

	if *fill != "" {
		err = m.Cassette().Fill(cassette.Pattern(*fill))
		if err != nil {
			return err
		}
	}

	return wavwriter.RenderFile(md.GetArg(0), m.Cassette().Medium.Bits())
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	cmdline := md.AddString("prefs", "", "command line preferences (eg. cassette.forward::wound)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	limited := md.AddBool("limit", false, "limit the tick rate to the cassette bit rate")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	prf := *profile
	if strings.EqualFold(prf, "all") {
		prf = "cpu,mem,trace"
	}
	pf, err := performance.ParseProfile(prf)
	if err != nil {
		return err
	}

	pr, err := loadPreferences(*cmdline)
	if err != nil {
		return err
	}
	setEcho(*log, pr)

	return performance.Check(os.Stdout, pf, pr, *limited, *duration)
}

func versionMode(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
