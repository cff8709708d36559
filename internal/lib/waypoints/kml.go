package waypoints

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/twpayne/go-kml/v2"

	"github.com/gckit/gckit/internal/lib/coords"
)

// Placemark is a named point read from or written to a KML document.
type Placemark struct {
	Name  string
	Point coords.Point
}

// kmlFile mirrors the subset of KML needed to pull point placemarks out of
// a document, including placemarks nested in folders.
type kmlFile struct {
	XMLName  xml.Name     `xml:"kml"`
	Document kmlContainer `xml:"Document"`
}

type kmlContainer struct {
	Folders    []kmlContainer `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name        string `xml:"name"`
	Coordinates string `xml:"Point>coordinates"`
}

// ReadKML extracts point placemarks from a KML document, walking the
// document and any nested folders in order. Placemarks without a Point
// geometry are skipped.
func ReadKML(r io.Reader) ([]Placemark, error) {
	var file kmlFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse KML: %w", err)
	}

	var marks []Placemark
	if err := collectPlacemarks(&file.Document, &marks); err != nil {
		return nil, err
	}
	return marks, nil
}

func collectPlacemarks(container *kmlContainer, marks *[]Placemark) error {
	for i := range container.Placemarks {
		pm := &container.Placemarks[i]
		if strings.TrimSpace(pm.Coordinates) == "" {
			continue
		}
		point, err := parseKMLCoordinates(pm.Coordinates)
		if err != nil {
			return fmt.Errorf("placemark %q: %w", pm.Name, err)
		}
		*marks = append(*marks, Placemark{Name: pm.Name, Point: point})
	}
	for i := range container.Folders {
		if err := collectPlacemarks(&container.Folders[i], marks); err != nil {
			return err
		}
	}
	return nil
}

// parseKMLCoordinates parses a KML coordinate tuple, which is
// "longitude,latitude[,altitude]".
func parseKMLCoordinates(s string) (coords.Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 {
		return coords.Point{}, fmt.Errorf("malformed coordinates %q", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return coords.Point{}, fmt.Errorf("malformed longitude %q", parts[0])
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return coords.Point{}, fmt.Errorf("malformed latitude %q", parts[1])
	}
	return coords.NewPoint(lat, lon)
}

// WriteKML writes the placemarks as a KML document with the given document
// name.
func WriteKML(w io.Writer, name string, marks []Placemark) error {
	doc := kml.Document(kml.Name(name))
	for _, m := range marks {
		doc.Add(kml.Placemark(
			kml.Name(m.Name),
			kml.Point(kml.Coordinates(kml.Coordinate{
				Lon: m.Point.Longitude,
				Lat: m.Point.Latitude,
			})),
		))
	}
	return kml.KML(doc).WriteIndent(w, "", "  ")
}
