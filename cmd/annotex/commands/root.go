package commands

import (
	"github.com/spf13/cobra"
)

var (
	flagFormat  string
	flagOutput  string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "annotex",
	Short: "Explore and organize object-detection annotation archives",
	Long:  `Annotex inspects a zip archive of mixed image and annotation files, detects which annotation format it uses (Pascal VOC XML, YOLO text, or COCO JSON), and reorganizes the contents into a predictable directory layout.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "terminal", "Output format (terminal, json, markdown)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Report file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
