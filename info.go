// seehuhn.de/go/imgmeta - image metadata inspection and cleaning
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package imgmeta

// Info explains a metadata key to the user.
type Info struct {
	Category    string
	Explanation string
}

// metadataDB maps EXIF tag names to explanations. Keys not present
// here fall back to a generic entry.
var metadataDB = map[string]Info{
	"Make": {
		Category:    "Camera",
		Explanation: "Camera manufacturer (e.g., Canon, Nikon, Apple)",
	},
	"Model": {
		Category:    "Camera",
		Explanation: "Specific camera or device model",
	},
	"Software": {
		Category:    "Camera",
		Explanation: "Camera firmware version or photo editing software used",
	},
	"FNumber": {
		Category:    "Settings",
		Explanation: "Aperture setting - lower numbers mean a wider aperture and shallower depth of field",
	},
	"ExposureTime": {
		Category:    "Settings",
		Explanation: "Shutter speed - how long the sensor was exposed to light",
	},
	"ISOSpeedRatings": {
		Category:    "Settings",
		Explanation: "Sensor sensitivity - higher ISO is more sensitive but potentially noisier",
	},
	"PhotographicSensitivity": {
		Category:    "Settings",
		Explanation: "Sensor sensitivity - higher ISO is more sensitive but potentially noisier",
	},
	"FocalLength": {
		Category:    "Settings",
		Explanation: "Lens focal length in millimeters - affects field of view and magnification",
	},
	"DateTime": {
		Category:    "Timestamp",
		Explanation: "When the photo was taken or last modified",
	},
	"DateTimeOriginal": {
		Category:    "Timestamp",
		Explanation: "When the photo was originally taken",
	},
	"GPSLatitude": {
		Category:    "Location",
		Explanation: "Latitude where the photo was taken - reveals the exact location",
	},
	"GPSLongitude": {
		Category:    "Location",
		Explanation: "Longitude where the photo was taken - reveals the exact location",
	},
	"GPSAltitude": {
		Category:    "Location",
		Explanation: "Altitude where the photo was taken",
	},
	"SerialNumber": {
		Category:    "Identity",
		Explanation: "Camera body serial number - uniquely identifies the device",
	},
	"LensSerialNumber": {
		Category:    "Identity",
		Explanation: "Lens serial number - uniquely identifies the lens",
	},
	"CameraOwnerName": {
		Category:    "Identity",
		Explanation: "Name of the camera owner as configured in the camera",
	},
	"Artist": {
		Category:    "Identity",
		Explanation: "Name of the photographer",
	},
	"Orientation": {
		Category:    "Technical",
		Explanation: "How the image should be rotated for display",
	},
	"XResolution": {
		Category:    "Technical",
		Explanation: "Horizontal pixel density of the image",
	},
	"YResolution": {
		Category:    "Technical",
		Explanation: "Vertical pixel density of the image",
	},
}

// Describe returns the category and a human readable explanation of a
// metadata key. Unknown keys get a generic entry in the "Other"
// category.
func Describe(key string) Info {
	if info, ok := metadataDB[key]; ok {
		return info
	}
	return Info{
		Category:    "Other",
		Explanation: "Additional metadata recorded by the camera or editing software",
	}
}
