// Command deltabench runs a handful of compose/transform/diff scenarios
// against randomized document fixtures and logs their timings. It exists
// to give the core delta package a runnable entry point outside of tests,
// the way a standalone benchmark harness would.
package main

import (
	"flag"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/deltaform/quilldelta"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	unicode := readSupportUnicode(logger)
	delta.SetGraphemeMode(unicode)
	logger.Infow("configured grapheme mode", "support_unicode", unicode)

	runCompose(logger)
	runTransform(logger)
	runDiff(logger)
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	base, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return base.Sugar()
}

// readSupportUnicode resolves the support_unicode toggle from, in order of
// precedence, the -unicode flag, the DELTAFORM_SUPPORT_UNICODE environment
// variable, and finally the default of true.
func readSupportUnicode(logger *zap.SugaredLogger) bool {
	viper.SetEnvPrefix("deltaform")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("support_unicode", true)

	unicode := flag.Bool("unicode", viper.GetBool("support_unicode"), "measure string length by grapheme cluster instead of byte")
	flag.Parse()
	return *unicode
}

func randomDocument(n int) delta.Delta {
	d := delta.New()
	for i := 0; i < n; i++ {
		word := gofakeit.Word()
		var attrs delta.Attributes
		if gofakeit.Bool() {
			attrs = delta.Attributes{delta.Key("bold"): true}
		}
		d = d.Insert(word+" ", attrs)
	}
	return d
}

func runCompose(logger *zap.SugaredLogger) {
	a := randomDocument(20)
	b := delta.New().Retain(a.Length()/2, delta.Attributes{delta.Key("italic"): true}).Delete(3)

	start := time.Now()
	result := delta.Compose(a, b)
	logger.Infow("compose", "ops", len(result.Operations()), "elapsed", time.Since(start))
}

func runTransform(logger *zap.SugaredLogger) {
	a := delta.New().Insert("left edit ", nil)
	b := delta.New().Insert("right edit ", nil)

	start := time.Now()
	result := delta.Transform(a, b, delta.PriorityLeft)
	logger.Infow("transform", "ops", len(result.Operations()), "elapsed", time.Since(start))
}

func runDiff(logger *zap.SugaredLogger) {
	a := randomDocument(30)
	b := randomDocument(30)

	start := time.Now()
	result, err := delta.Diff(a, b)
	if err != nil {
		logger.Errorw("diff failed", "error", err)
		return
	}
	logger.Infow("diff", "ops", len(result.Operations()), "elapsed", time.Since(start))
}
