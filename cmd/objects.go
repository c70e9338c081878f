package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heron-ml/heron/core/factory"
	"github.com/heron-ml/heron/core/object"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "Inspect the registered object catalog",
}

var objectsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registered class names",
	RunE:  runObjectsLs,
}

var describeType string

var objectsDescribeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Instantiate a class and print its identity",
	Args:  cobra.ExactArgs(1),
	RunE:  runObjectsDescribe,
}

var objectsSuggestCmd = &cobra.Command{
	Use:   "suggest <name>",
	Short: "Print the closest registered class name",
	Args:  cobra.ExactArgs(1),
	RunE:  runObjectsSuggest,
}

func init() {
	objectsDescribeCmd.Flags().StringVarP(&describeType, "type", "t", "not_generic", "primitive type variant")
	objectsCmd.AddCommand(objectsLsCmd, objectsDescribeCmd, objectsSuggestCmd)
	rootCmd.AddCommand(objectsCmd)
}

func runObjectsLs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	for _, name := range reg.AvailableObjects() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runObjectsDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	pt, err := object.ParsePrimitiveType(describeType)
	if err != nil {
		return err
	}
	obj, err := factory.CreateObject[object.Object](reg, args[0], pt)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "name: %s\ntype: %s\nimpl: %T\nuid: %s\n", obj.Name(), pt, obj, obj.UID())
	return nil
}

func runObjectsSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	suggestion := reg.FindCorrectName(args[0])
	if suggestion == "" {
		return fmt.Errorf("registry is empty")
	}
	fmt.Fprintln(cmd.OutOrStdout(), suggestion)
	return nil
}
