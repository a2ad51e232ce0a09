// This file is part of gpretro.
//
// gpretro is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpretro is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gpretro.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/gpretro/logger"
)

// Address is used when Launch() is given an empty address.
const Address = "localhost:12600"

const url = "/debug/statsview"

// sampling interval of the stats server in milliseconds
const interval = 500

// Launch the stats server on the given address in a new goroutine and
// return the URL of the stats page.
func Launch(output io.Writer, addr string) string {
	if addr == "" {
		addr = Address
	}
	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithInterval(interval))

	go func() {
		mgr := statsview.New()
		mgr.Start()
	}()

	page := fmt.Sprintf("%s%s", addr, url)
	logger.Logf(logger.Allow, "statsview", "launched at %s", page)
	fmt.Fprintf(output, "stats server available at %s\n", page)
	return page
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
