package networkparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/wirenet/pkg"
	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
	"github.com/lintang-b-s/wirenet/pkg/util"
	"go.uber.org/zap"
)

// NetworkParser reads the plain text graph description:
//
//	N
//	start end medium bandwidth length
//	...
//
// medium is copper or optical, case-insensitive. Files ending in .bz2 are bzip2 compressed.
type NetworkParser struct {
	validate *validator.Validate
	trans    ut.Translator
	log      *zap.Logger
}

func NewNetworkParser(log *zap.Logger) *NetworkParser {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("name")
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &NetworkParser{
		validate: validate,
		trans:    trans,
		log:      log,
	}
}

func (p *NetworkParser) ParseFile(filename string) (*da.NetworkGraph, error) {
	f, err := os.Open(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "network graph file %s not found", filename)
	} else if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "open network graph file %s", filename)
	}
	defer f.Close()

	var r io.Reader = f
	if isBzip2(filename) {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	p.log.Info("Reading network graph", zap.String("filename", filename))
	return p.Parse(r)
}

func (p *NetworkParser) Parse(r io.Reader) (*da.NetworkGraph, error) {
	scanner := bufio.NewScanner(r)

	lineNumber := 0
	var graph *da.NetworkGraph
	numberOfVertices := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if graph == nil {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, util.WrapErrorf(err, ErrMalformedLine,
					"line %d: expected a non-negative number of vertices, got %q", lineNumber, line)
			}
			numberOfVertices = n
			graph = da.NewNetworkGraph(n)
			continue
		}

		wire, err := p.parseWire(line, lineNumber, numberOfVertices)
		if err != nil {
			return nil, err
		}
		graph.AddWire(wire)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if graph == nil {
		return nil, util.WrapErrorf(nil, ErrMalformedLine, "missing number of vertices")
	}

	p.log.Info("Network graph loaded", zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("wires", graph.NumberOfWires()))
	return graph, nil
}

func (p *NetworkParser) parseWire(line string, lineNumber, numberOfVertices int) (*da.Wire, error) {
	ff := strings.Fields(line)
	if len(ff) != 5 {
		return nil, util.WrapErrorf(nil, ErrMalformedLine,
			"line %d: expected 5 fields `start end medium bandwidth length`, got %d", lineNumber, len(ff))
	}

	ints := make([]int, 0, 4)
	for _, i := range []int{0, 1, 3, 4} {
		val, err := strconv.Atoi(ff[i])
		if err != nil {
			return nil, util.WrapErrorf(err, ErrMalformedLine, "line %d: field %d is not an integer", lineNumber, i+1)
		}
		ints = append(ints, val)
	}

	record := wireRecord{
		NumberOfVertices: numberOfVertices,
		Start:            ints[0],
		End:              ints[1],
		Medium:           strings.ToLower(ff[2]),
		Bandwidth:        ints[2],
		Length:           ints[3],
	}

	if pkg.GetMedium(record.Medium) == pkg.UNKNOWN_MEDIUM {
		return nil, util.WrapErrorf(nil, ErrUnknownMedium, "line %d: unknown medium %q", lineNumber, ff[2])
	}

	if err := p.validate.Struct(record); err != nil {
		vv := translateError(err, p.trans)
		vvString := make([]string, 0, len(vv))
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return nil, util.WrapErrorf(nil, ErrMalformedLine, "line %d: validation error: %v", lineNumber, vvString)
	}

	return da.NewWire(da.Index(record.Start), da.Index(record.End), pkg.GetMedium(record.Medium),
		record.Bandwidth, record.Length), nil
}

func translateError(err error, trans ut.Translator) []error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []error{err}
	}

	errs := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

func isBzip2(filename string) bool {
	return strings.HasSuffix(filename, ".bz2")
}

// WriteGraph writes graph in the format read by Parse.
func WriteGraph(w io.Writer, graph *da.NetworkGraph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d\n", graph.NumberOfVertices()); err != nil {
		return err
	}
	for _, wire := range graph.Wires() {
		if _, err := fmt.Fprintf(bw, "%d %d %s %d %d\n", wire.GetStart(), wire.GetEnd(), wire.GetMedium(),
			wire.GetBandwidth(), wire.GetRawLength()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func WriteGraphFile(filename string, graph *da.NetworkGraph) error {
	f, err := os.Create(filename)
	if err != nil {
		return util.WrapErrorf(err, util.ErrInternalServerError, "create network graph file %s", filename)
	}
	defer f.Close()

	if !isBzip2(filename) {
		return WriteGraph(f, graph)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := WriteGraph(bz, graph); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}
