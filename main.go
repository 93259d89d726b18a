// Command covcheck checks covariant array rules for unsound writes.
package main

import "github.com/mouse-blink/covcheck/cmd"

func main() {
	cmd.Execute()
}
