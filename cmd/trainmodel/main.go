// Command trainmodel fits the apple classifier on procedurally
// generated apples and writes the checkpoint the game loads at startup.
package main

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/vision"
)

func main() {
	tc := vision.DefaultTrainConfig()
	out := flag.String("out", config.Vision.ModelPath, "checkpoint output path")
	flag.IntVar(&tc.Samples, "samples", tc.Samples, "number of synthetic training images")
	flag.IntVar(&tc.Epochs, "epochs", tc.Epochs, "training epochs")
	flag.Float64Var(&tc.LearnRate, "lr", tc.LearnRate, "Adam learning rate")
	flag.Int64Var(&tc.Seed, "seed", tc.Seed, "rng seed for data and weights")
	flag.Parse()

	log.Info("training apple classifier",
		"samples", tc.Samples,
		"epochs", tc.Epochs,
		"imageSize", tc.ImageSize)

	ck, err := vision.Train(tc, func(st vision.EpochStats) {
		log.Info("epoch complete",
			"epoch", st.Epoch,
			"loss", fmt.Sprintf("%.4f", st.TrainLoss),
			"valAccuracy", fmt.Sprintf("%.3f", st.ValAccuracy))
	})
	if err != nil {
		log.Fatal("training failed", "err", err)
	}

	if err := ck.Save(*out); err != nil {
		log.Fatal("could not write checkpoint", "err", err)
	}
	log.Info("checkpoint written", "path", *out, "valAccuracy", fmt.Sprintf("%.3f", ck.ValAccuracy))
}
