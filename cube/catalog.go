package cube

import (
	"fmt"
	"slices"
	"sync"
)

// RegionKey identifies a catalog region.
type RegionKey struct {
	Side SideID
	Name string
}

// Catalog is the immutable table of dots and white areas for one layout.
// All cells are stored in global coordinates; lookups return deep copies.
type Catalog struct {
	layout  *Layout
	regions map[RegionKey]Region
	byName  map[string]RegionKey
	order   []RegionKey // train order: each side's dots, then its white area
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultOrder is the curve order the authored catalog data is drawn for.
const DefaultOrder = 4

// Default returns the catalog for DefaultOrder. It is built on first use and
// shared afterwards; no caller observes a partially built catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		var l *Layout
		l, defaultErr = NewLayout(DefaultOrder)
		if defaultErr != nil {
			return
		}
		defaultCatalog, defaultErr = NewCatalog(l)
	})

	return defaultCatalog, defaultErr
}

// NewCatalog builds the catalog for l from the authored data, validating that
// every side carries as many dots as pips, that dots are 4-connected, inside
// the side and disjoint, and that the white area is the non-empty remainder.
// Returns ErrUnsupportedOrder when no data exists for l.Order().
// Complexity: O(6·4^p·p).
func NewCatalog(l *Layout) (*Catalog, error) {
	data, ok := authored[l.Order()]
	if !ok {
		return nil, fmt.Errorf("NewCatalog(order %d): %w", l.Order(), ErrUnsupportedOrder)
	}
	c := &Catalog{
		layout:  l,
		regions: make(map[RegionKey]Region),
		byName:  make(map[string]RegionKey),
	}
	n := l.SideLength()

	for _, side := range l.Sides() {
		placements := data.dots[side.ID]
		if len(placements) != int(side.ID) {
			return nil, fmt.Errorf("%s: %d dots for %d pips: %w", side.ID, len(placements), int(side.ID), ErrCatalogData)
		}
		occupied := make(map[Coordinate]bool, len(placements)*len(data.pip))
		for _, pl := range placements {
			local := make([]Coordinate, len(data.pip))
			for i, p := range data.pip {
				cell := Coordinate{X: p.X + pl.Anchor.X, Y: p.Y + pl.Anchor.Y}
				if cell.X < 0 || cell.Y < 0 || cell.X >= n || cell.Y >= n {
					return nil, fmt.Errorf("dot %s: cell (%d,%d) off side: %w", pl.Name, cell.X, cell.Y, ErrCatalogData)
				}
				if occupied[cell] {
					return nil, fmt.Errorf("dot %s: cell (%d,%d) overlaps: %w", pl.Name, cell.X, cell.Y, ErrCatalogData)
				}
				occupied[cell] = true
				local[i] = cell
			}
			if k := len(components(local)); k != 1 {
				return nil, fmt.Errorf("dot %s: %d pieces: %w", pl.Name, k, ErrCatalogData)
			}
			if err := c.add(side, pl.Name, KindDot, local); err != nil {
				return nil, err
			}
		}

		white := make([]Coordinate, 0, n*n-len(occupied))
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				if cell := (Coordinate{X: x, Y: y}); !occupied[cell] {
					white = append(white, cell)
				}
			}
		}
		if len(white) == 0 {
			return nil, fmt.Errorf("%s: no white area: %w", side.ID, ErrCatalogData)
		}
		if err := c.add(side, WhiteAreaName(side.ID), KindWhiteArea, white); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// WhiteAreaName returns the catalog name of a side's white area.
func WhiteAreaName(id SideID) string {
	return fmt.Sprintf("W%d", int(id))
}

// add promotes local cells to global form and records the region.
func (c *Catalog) add(side Side, name string, kind Kind, local []Coordinate) error {
	if _, dup := c.byName[name]; dup {
		return fmt.Errorf("region %s defined twice: %w", name, ErrCatalogData)
	}
	global, err := c.layout.ToGlobal(local, side.Index)
	if err != nil {
		return err
	}
	squares, err := c.layout.RegionSquares(global)
	if err != nil {
		return err
	}
	slices.Sort(squares)

	key := RegionKey{Side: side.ID, Name: name}
	c.regions[key] = Region{Name: name, Side: side.ID, Kind: kind, Cells: global, Squares: squares}
	c.byName[name] = key
	c.order = append(c.order, key)

	return nil
}

// Layout returns the layout the catalog was built for.
func (c *Catalog) Layout() *Layout { return c.layout }

// Region returns the region name on side id.
func (c *Catalog) Region(id SideID, name string) (Region, error) {
	r, ok := c.regions[RegionKey{Side: id, Name: name}]
	if !ok {
		return Region{}, fmt.Errorf("Region(%s, %q): %w", id, name, ErrUnknownRegion)
	}

	return r.Clone(), nil
}

// Lookup returns the region with the given name, e.g. "4C" or "W6".
func (c *Catalog) Lookup(name string) (Region, error) {
	key, ok := c.byName[name]
	if !ok {
		return Region{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownRegion)
	}

	return c.regions[key].Clone(), nil
}

// Names returns every region name in train order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	for i, k := range c.order {
		out[i] = k.Name
	}

	return out
}

// Regions returns every region in train order.
func (c *Catalog) Regions() []Region {
	return c.filter(func(Region) bool { return true })
}

// Dots returns the dot regions in train order.
func (c *Catalog) Dots() []Region {
	return c.filter(func(r Region) bool { return r.Kind == KindDot })
}

// WhiteAreas returns the white-area regions in train order.
func (c *Catalog) WhiteAreas() []Region {
	return c.filter(func(r Region) bool { return r.Kind == KindWhiteArea })
}

// SideRegions returns the dots of side id followed by its white area.
func (c *Catalog) SideRegions(id SideID) ([]Region, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("SideRegions(%d): %w", int(id), ErrInvalidSide)
	}

	return c.filter(func(r Region) bool { return r.Side == id }), nil
}

func (c *Catalog) filter(keep func(Region) bool) []Region {
	var out []Region
	for _, k := range c.order {
		if r := c.regions[k]; keep(r) {
			out = append(out, r.Clone())
		}
	}

	return out
}
