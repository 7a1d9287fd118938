package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/catonis/Vectors/lib/scene"
	"github.com/catonis/Vectors/lib/vec"
)

var (
	scenePath string
	units     string
	doProf    bool
)

func main() {
	flag.StringVar(&scenePath, "scene", "./scene.hjson", "Path to HJSON scene file")
	flag.StringVar(&units, "units", "rad", "Angle units (rad or deg)")
	flag.BoolVar(&doProf, "prof", false, "Enable CPU profiling")
	flag.Parse()

	if doProf {
		defer profile.Start().Stop()
	}

	s, err := scene.Load(scenePath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	vectors := make(map[string]vec.Vector, len(s.Vectors))
	for _, e := range s.Vectors {
		v, err := e.Vector()
		if err != nil {
			fmt.Printf("error:%v: %v\n", e.Name, err)
			os.Exit(1)
		}
		vectors[e.Name] = v
		describe(e.Name, v)
	}

	// Pairwise dot products, in file order.
	for i, a := range s.Vectors {
		for _, b := range s.Vectors[i+1:] {
			d, err := vectors[a.Name].Dot(vectors[b.Name])
			if err != nil {
				continue // mixed dimensions are fine in one scene
			}
			fmt.Printf("info:%s . %s = %v\n", a.Name, b.Name, d)
		}
	}
}

func describe(name string, v vec.Vector) {
	fmt.Printf("info:%s = %v (dtype %v, norm %v)\n", name, v, v.DType(), v.Norm())

	if u, err := v.Unit(); err == nil {
		fmt.Printf("info:%s unit = %v\n", name, u)
	}

	switch v.Dim() {
	case 2:
		p, _ := vec.AsPlanar(v)
		if r, theta, err := p.ToPolar(units); err == nil {
			fmt.Printf("info:%s polar = [%v, %v]\n", name, r, theta)
		}
		if w, err := p.Vec2(); err == nil {
			fmt.Printf("info:%s f64 = %v\n", name, w)
		}
		fmt.Printf("info:%s line: %s\n", name, p.AsLine())
		if cart, err := p.AsCartesianLine(); err == nil {
			fmt.Printf("info:%s line: %s\n", name, cart)
		}
	case 3:
		sp, _ := vec.AsSpatial(v)
		if r, theta, z, err := sp.ToCylindrical(units); err == nil {
			fmt.Printf("info:%s cylindrical = [%v, %v, %v]\n", name, r, theta, z)
		}
		if r, theta, phi, err := sp.ToSpherical(units); err == nil {
			fmt.Printf("info:%s spherical = [%v, %v, %v]\n", name, r, theta, phi)
		}
		if w, err := sp.Vec3(); err == nil {
			fmt.Printf("info:%s f64 = %v\n", name, w)
		}
	}
}
