package main

import (
	"fmt"
	"image/png"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/punchcraft/refill"
	"github.com/punchcraft/refill/pkg/content"
	"github.com/punchcraft/refill/pkg/render"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	app := kingpin.New("refill", "Create duplex-printable binder refill pages")
	app.HelpFlag.Short('h')
	logLevel := app.Flag("log", "Log level (debug, info, warning, error)").Default("warning").String()

	list := app.Command("standards", "List the supported binder standards").Default()

	mk := app.Command("make", "Build a duplex PDF from images and PDF pages")
	var (
		standard = mk.Flag("standard", "Binder standard id").Short('s').Default("a5-20").String()
		size     = mk.Flag("size", "Target sheet size (a4, a5), defaults to the standard's native size").Short('z').String()
		padding  = mk.Flag("padding", "Add a 5mm buffer between content and hole margin").Short('p').Bool()
		out      = mk.Flag("output", "Output file").Short('o').Default("refill.pdf").String()
		files    = mk.Arg("files", "Input images or PDF documents").Required().ExistingFiles()
	)

	pv := app.Command("preview", "Render one side of one sheet to a PNG image")
	var (
		pvStandard = pv.Flag("standard", "Binder standard id").Short('s').Default("a5-20").String()
		pvSize     = pv.Flag("size", "Target sheet size (a4, a5)").Short('z').String()
		pvPadding  = pv.Flag("padding", "Add a 5mm buffer between content and hole margin").Short('p').Bool()
		pvSheet    = pv.Flag("sheet", "Sheet number (1-based)").Default("1").Int()
		pvBack     = pv.Flag("back", "Preview the outline side instead of the content side").Bool()
		pvDpi      = pv.Flag("dpi", "Preview resolution").Default("150").Float64()
		pvOut      = pv.Flag("output", "Output file").Short('o').Default("preview.png").String()
		pvFiles    = pv.Arg("files", "Input images or PDF documents").Required().ExistingFiles()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	refill.SetLogLevel(*logLevel)

	var err error
	switch command {
	case list.FullCommand():
		err = doStandards()
	case mk.FullCommand():
		err = doMake(*standard, *size, *padding, *out, *files)
	case pv.FullCommand():
		err = doPreview(*pvStandard, *pvSize, *pvPadding, *pvSheet, *pvBack, *pvDpi, *pvOut, *pvFiles)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("%v %v\n", crossmark, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func doStandards() error {
	fmt.Println("Supported binder standards")
	fmt.Println("--------------------------")
	for _, b := range refill.Standards() {
		fmt.Printf("%-10v %-20v %2d holes, %v mm, %vx%v mm\n",
			b.ID, b.Name, b.HoleCount, b.HoleDiameter, b.NativeSize.Width, b.NativeSize.Height)
	}
	return nil
}

func doMake(standard, size string, padding bool, out string, files []string) error {
	plans, err := plan(standard, size, padding, files)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("%v render %v sheets\n", ellipsis, len(plans))
	err = render.WritePDF(plans, f)
	if err != nil {
		return err
	}

	fmt.Printf("%v document saved as %q.\n", checkmark, out)
	return nil
}

func doPreview(standard, size string, padding bool, sheet int, back bool, dpi float64, out string, files []string) error {
	plans, err := plan(standard, size, padding, files)
	if err != nil {
		return err
	}
	if sheet < 1 || sheet > len(plans) {
		return fmt.Errorf("no sheet %v, the layout has %v sheets", sheet, len(plans))
	}

	p := plans[sheet-1]
	img := render.PreviewFront(p, dpi)
	if back {
		img = render.PreviewBack(p, dpi)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return err
	}

	fmt.Printf("%v preview saved as %q.\n", checkmark, out)
	return nil
}

// plan loads all input files and computes the sheet layout.
func plan(standard, size string, padding bool, files []string) ([]refill.SheetPlan, error) {
	p, err := refill.NewProject(standard)
	if err != nil {
		return nil, err
	}
	if size != "" {
		s, err := refill.SizeByName(size)
		if err != nil {
			return nil, err
		}
		p.SetSheetSize(s)
	}
	p.SetPadding(padding)

	units, err := loadAll(files)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		_, err = p.AddPage(u.Kind, u.Raster)
		if err != nil {
			return nil, err
		}
	}

	return p.Plan()
}

// loadAll ingests the given files concurrently, preserving input order.
func loadAll(paths []string) ([]content.Unit, error) {
	results := make([][]content.Unit, len(paths))

	var group errgroup.Group
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			fmt.Printf("%v load %q\n", ellipsis, path)
			units, err := content.ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = units
			return nil
		})
	}
	err := group.Wait()
	if err != nil {
		return nil, err
	}

	var units []content.Unit
	for _, r := range results {
		units = append(units, r...)
	}
	return units, nil
}
