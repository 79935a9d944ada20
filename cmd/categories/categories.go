// Package categories implements management of the category store: listing
// categories, creating new ones, and attaching keywords.
package categories

import (
	"fmt"
	"strings"

	"ledgerlens/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd is the categories command group
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage the category store",
	Long:  `List spending categories, create new ones, and attach matching keywords.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their keywords",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a new empty category",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var keywordCmd = &cobra.Command{
	Use:   "keyword CATEGORY KEYWORD",
	Short: "Attach a matching keyword to a category",
	Args:  cobra.ExactArgs(2),
	Run:   keywordFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(keywordCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	for _, c := range st.Categories() {
		if len(c.Keywords) == 0 {
			fmt.Println(c.Name)
			continue
		}
		fmt.Printf("%s: %s\n", c.Name, strings.Join(c.Keywords, ", "))
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	name := args[0]
	st := root.OpenStore()

	if !st.CreateCategory(name) {
		root.Log.Warnf("Category %q was not created (empty or already present)", name)
		return
	}
	if err := st.Save(); err != nil {
		root.Log.Fatalf("Failed to persist category store: %v", err)
	}
	root.Log.Infof("Category %q added", name)
}

func keywordFunc(cmd *cobra.Command, args []string) {
	category, keyword := args[0], args[1]
	st := root.OpenStore()

	if !st.AddKeyword(category, keyword) {
		root.Log.Warnf("Keyword %q was not added to %q (duplicate, empty, or unknown category)", keyword, category)
		return
	}
	if err := st.Save(); err != nil {
		root.Log.Fatalf("Failed to persist category store: %v", err)
	}
	root.Log.Infof("Keyword %q added to category %q", keyword, category)
}
