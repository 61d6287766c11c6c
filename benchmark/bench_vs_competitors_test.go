package benchmark_test

import (
	"bytes"
	"testing"

	"github.com/lemonkit/lemon/lemon"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"
)

// Each scenario resolves the same arguments with every library. lemon
// sessions are single use, so every library builds its definitions inside
// the loop.

func quietParser(args []string) *lemon.Parser {
	p := lemon.New(args)
	p.IO().WithOut(&bytes.Buffer{}).WithErr(&bytes.Buffer{}).NoColor()
	return p
}

// Simple: one int and one bool

func BenchmarkSimple_Lemon(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := quietParser(args)
		port, err := lemon.AddValue[int](p).Flag('p').Key("port").Default(8080).Parse()
		if err != nil {
			b.Fatal(err)
		}
		verbose, err := p.AddCheck().Flag('v').Key("verbose").Parse()
		if err != nil {
			b.Fatal(err)
		}
		if err := p.EnableHelp(); err != nil {
			b.Fatal(err)
		}
		if port.Or(0) != 9000 || !verbose.Present() {
			b.Fatal("unexpected result")
		}
	}
}

func BenchmarkSimple_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{Use: "bench", Run: func(_ *cobra.Command, _ []string) {}}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkSimple_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

func BenchmarkSimple_Pflag(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		port := fs.IntP("port", "p", 8080, "Server port")
		verbose := fs.BoolP("verbose", "v", false, "Verbose output")
		if err := fs.Parse(args); err != nil {
			b.Fatal(err)
		}
		if *port != 9000 || !*verbose {
			b.Fatal("unexpected result")
		}
	}
}

// Lists: a list of strings plus a restricted value. lemon takes the list as
// a run of tokens, the others as a comma separated value.

func BenchmarkLists_Lemon(b *testing.B) {
	args := []string{"bench", "--tags", "a", "b", "c", "--mode", "fast"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := quietParser(args)
		tags, err := lemon.AddList[string](p).Key("tags").Parse()
		if err != nil {
			b.Fatal(err)
		}
		mode, err := lemon.AddValue[string](p).Key("mode").Options("fast", "slow").Parse()
		if err != nil {
			b.Fatal(err)
		}
		if err := p.EnableHelp(); err != nil {
			b.Fatal(err)
		}
		if tags.Len() != 3 || mode.Or("") != "fast" {
			b.Fatal("unexpected result")
		}
	}
}

func BenchmarkLists_Cobra(b *testing.B) {
	args := []string{"--tags", "a,b,c", "--mode", "fast"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{Use: "bench", Run: func(_ *cobra.Command, _ []string) {}}
		cmd.Flags().StringSlice("tags", nil, "Tags")
		cmd.Flags().String("mode", "fast", "Mode")
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkLists_Urfave(b *testing.B) {
	args := []string{"bench", "--tags", "a,b,c", "--mode", "fast"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "tags", Usage: "Tags"},
				&cli.StringFlag{Name: "mode", Value: "fast", Usage: "Mode"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

func BenchmarkLists_Pflag(b *testing.B) {
	args := []string{"--tags", "a,b,c", "--mode", "fast"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		tags := fs.StringSlice("tags", nil, "Tags")
		fs.String("mode", "fast", "Mode")
		if err := fs.Parse(args); err != nil {
			b.Fatal(err)
		}
		if len(*tags) != 3 {
			b.Fatal("unexpected result")
		}
	}
}

// ManyFlags: ten string values, half of them supplied

var manyKeys = []string{"flag1", "flag2", "flag3", "flag4", "flag5", "flag6", "flag7", "flag8", "flag9", "flag10"}

func manyArgs() []string {
	return []string{"--flag1", "v1", "--flag3", "v3", "--flag5", "v5", "--flag7", "v7", "--flag9", "v9"}
}

func BenchmarkManyFlags_Lemon(b *testing.B) {
	args := append([]string{"bench"}, manyArgs()...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := quietParser(args)
		for _, key := range manyKeys {
			if _, err := lemon.AddValue[string](p).Key(key).Default("default").Parse(); err != nil {
				b.Fatal(err)
			}
		}
		if err := p.EnableHelp(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkManyFlags_Cobra(b *testing.B) {
	args := manyArgs()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{Use: "bench", Run: func(_ *cobra.Command, _ []string) {}}
		for _, key := range manyKeys {
			cmd.Flags().String(key, "default", key)
		}
		cmd.SetArgs(args)
		_ = cmd.Execute()
	}
}

func BenchmarkManyFlags_Urfave(b *testing.B) {
	args := append([]string{"bench"}, manyArgs()...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		flags := make([]cli.Flag, 0, len(manyKeys))
		for _, key := range manyKeys {
			flags = append(flags, &cli.StringFlag{Name: key, Value: "default", Usage: key})
		}
		app := &cli.App{Name: "bench", Flags: flags, Action: func(_ *cli.Context) error { return nil }}
		_ = app.Run(args)
	}
}

func BenchmarkManyFlags_Pflag(b *testing.B) {
	args := manyArgs()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		for _, key := range manyKeys {
			fs.String(key, "default", key)
		}
		if err := fs.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}
