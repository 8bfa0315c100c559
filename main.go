package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"github.com/dcaudio/aicasfx/convert"
)

var rootCmd = &cobra.Command{
	Use:   "aicasfx",
	Short: "Convert 16 bit PCM wav files to 4 bit AICA adpcm and back",
}

var toAdpcmCmd = &cobra.Command{
	Use:   "to-adpcm <in.wav> <out.wav>",
	Short: "Compress a 16 bit PCM wav into 4 bit adpcm",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := convert.WavToAdpcm(args[0], args[1])

		if err == nil {
			fmt.Printf("Wrote adpcm file to %s\n", args[1])
		}

		return err
	},
}

var fromAdpcmCmd = &cobra.Command{
	Use:   "from-adpcm <in.wav> <out.wav>",
	Short: "Expand a 4 bit adpcm wav back to 16 bit PCM",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := convert.AdpcmToWav(args[0], args[1])

		if err == nil {
			fmt.Printf("Wrote pcm file to %s\n", args[1])
		}

		return err
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <file.wav>",
	Short: "Print the format of a wav file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printInfo(args[0])
	},
}

func printInfo(filename string) error {
	file, err := os.Open(filename)

	if err != nil {
		return err
	}

	defer file.Close()

	var decoder = wav.NewDecoder(file)
	decoder.ReadInfo()

	if decoder.Err() != nil {
		return decoder.Err()
	}

	fmt.Printf("%s: format %d, %d channel(s), %d Hz, %d bits per sample\n",
		filename, decoder.WavAudioFormat, decoder.NumChans,
		decoder.SampleRate, decoder.BitDepth)

	duration, err := decoder.Duration()

	if err == nil {
		fmt.Printf("duration %s\n", duration)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(toAdpcmCmd, fromAdpcmCmd, infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
