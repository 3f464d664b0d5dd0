package toolbox

import (
	"fmt"
	"io"

	log "github.com/golang/glog"
)

const (
	MenuPrompt       = "> "
	MenuErrorMessage = "Invalid selection."
)

type MenuCallback = func(id int)

type MenuItem struct {
	ID       int
	Title    string
	Callback MenuCallback
}

func (this MenuItem) String() string { return this.Title }

// Menu a numbered list of items that the user select one of them from a `Scanner`
type Menu struct {
	items []MenuItem
}

func (this *Menu) AddItem(id int, title string, callback MenuCallback) {
	this.items = append(this.items, MenuItem{ID: id, Title: title, Callback: callback})
}
func (this *Menu) Reset()   { this.items = nil }
func (this *Menu) Len() int { return len(this.items) }

// Show write items of the menu, one per line, numbered from 1
func (this *Menu) Show(w io.Writer) error {
	for i := 0; i < len(this.items); i++ {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, this.items[i]); err != nil {
			return err
		}
	}
	return nil
}

// Select read number of an item until a valid one is entered and then call its callback
func (this *Menu) Select(scanner *Scanner) error {
	if len(this.items) == 0 {
		return ErrEmptyMenu
	}

	count := int32(len(this.items))
	no, err := scanner.ReadInt32(ReadOptions[int32]{
		Prompt:       MenuPrompt,
		ErrorMessage: MenuErrorMessage,
		Validators: []Predicate[int32]{
			func(v int32) bool { return v >= 1 && v <= count },
		},
	})
	if err != nil {
		return err
	}

	item := this.items[no-1]
	log.V(1).Infof("Menu item %d(%s) selected", item.ID, item.Title)
	if item.Callback != nil {
		item.Callback(item.ID)
	}
	return nil
}
