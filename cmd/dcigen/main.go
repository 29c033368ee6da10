// Command dcigen packs a sample DCI payload for every format/RNTI variant
// given a BWP configuration, for offline sanity-checking of a scheduler's
// size-alignment inputs before they're wired into a live cell.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	nrdci "github.com/pd0mz/go-nr-dci"
	"github.com/pd0mz/go-nr-dci/dci"
	"github.com/pd0mz/go-nr-dci/dcicache"
	flag "github.com/spf13/pflag"
)

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")

	var cfg dci.Config
	flag.IntVar(&cfg.NRbULBWPInitial, "n-rb-ul-initial", 24, "initial UL BWP size, in resource blocks")
	flag.IntVar(&cfg.NRbULBWPActive, "n-rb-ul-active", 48, "active UL BWP size, in resource blocks")
	flag.IntVar(&cfg.NRbDLBWPInitial, "n-rb-dl-initial", 24, "initial DL BWP size, in resource blocks")
	flag.IntVar(&cfg.NRbDLBWPActive, "n-rb-dl-active", 48, "active DL BWP size, in resource blocks")
	flag.IntVar(&cfg.Coreset0BW, "coreset0-bw", 0, "CORESET#0 size, in resource blocks (0 if not configured)")
	flag.BoolVar(&cfg.EnableSUL, "enable-sul", false, "cell is configured with a Supplementary Uplink")
	flag.Parse()

	if showVersion {
		fmt.Println(nrdci.PackageID)
		return
	}

	logger := log.New(os.Stderr)
	cache := dcicache.New(logger)
	sizes := cache.Sizes(cfg)

	fmt.Printf("CSS:  DCI 0_0 = %d bits, DCI 1_0 = %d bits\n", sizes.Format00Common, sizes.Format10Common)
	fmt.Printf("USS:  DCI 0_0 = %d bits, DCI 1_0 = %d bits\n", sizes.Format00UESpecific, sizes.Format10UESpecific)

	nRbDLCSS := cfg.Coreset0BW
	if nRbDLCSS == 0 {
		nRbDLCSS = cfg.NRbDLBWPInitial
	}

	msg3 := dci.PackFormat00TCRNTI(dci.Format00TCRNTIConfig{
		PayloadSize: sizes.Format00Common,
		NRbULBWP:    cfg.NRbULBWPInitial,
	})
	fmt.Printf("DCI 0_0/TC-RNTI  (Msg3): %s\n", msg3)

	msg4 := dci.PackFormat10TCRNTI(dci.Format10TCRNTIConfig{
		PayloadSize: sizes.Format10Common,
		NRbDLBWP:    nRbDLCSS,
	})
	fmt.Printf("DCI 1_0/TC-RNTI  (Msg4): %s\n", msg4)

	ulGrant := dci.PackFormat00CRNTI(dci.Format00CRNTIConfig{
		PayloadSize: sizes.Format00UESpecific,
		NRbULBWP:    cfg.NRbULBWPActive,
	})
	fmt.Printf("DCI 0_0/C-RNTI         : %s\n", ulGrant)

	dlAssignment := dci.PackFormat10CRNTI(dci.Format10CRNTIConfig{
		PayloadSize: sizes.Format10UESpecific,
		NRbDLBWP:    cfg.NRbDLBWPActive,
	})
	fmt.Printf("DCI 1_0/C-RNTI         : %s\n", dlAssignment)

	si := dci.PackFormat10SIRNTI(dci.Format10SIRNTIConfig{
		PayloadSize: dci.ComputeFormat10SIRNTISize(nRbDLCSS),
		NRbDLBWP:    nRbDLCSS,
	})
	fmt.Printf("DCI 1_0/SI-RNTI        : %s\n", si)

	ra := dci.PackFormat10RARNTI(dci.Format10RARNTIConfig{
		PayloadSize: dci.ComputeFormat10RARNTISize(nRbDLCSS),
		NRbDLBWP:    nRbDLCSS,
	})
	fmt.Printf("DCI 1_0/RA-RNTI        : %s\n", ra)

	paging := dci.PackFormat10PRNTI(dci.Format10PRNTIConfig{
		PayloadSize:            dci.ComputeFormat10PRNTISize(nRbDLCSS),
		NRbDLBWP:               nRbDLCSS,
		ShortMessagesIndicator: dci.SchedulingInformation,
	})
	fmt.Printf("DCI 1_0/P-RNTI         : %s\n", paging)

	rar := dci.PackRAR(dci.RARConfig{})
	fmt.Printf("RAR UL grant           : %s\n", rar)
}
