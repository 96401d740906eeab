package db

import (
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/jsphweid/motifgen/generator"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("generation not found")

// Generation is the archived summary of one generated piece. Notes are not
// stored, the file at Path holds them.
type Generation struct {
	ID        string
	Key       string
	Form      string
	Style     string
	Recipe    []string
	Measures  int
	Path      string
	CreatedAt time.Time
}

func NewGeneration(res *generator.Result, key string, form string, path string) Generation {
	recipe := make([]string, len(res.Recipe))
	for i, chain := range res.Recipe {
		recipe[i] = chain.String()
	}
	return Generation{
		ID:        res.ID,
		Key:       key,
		Form:      form,
		Style:     res.Style,
		Recipe:    recipe,
		Measures:  len(res.Recipe),
		Path:      path,
		CreatedAt: time.Now().UTC(),
	}
}

type Archive struct {
	client *dynamodb.DynamoDB
	table  string
}

func NewArchive(endpoint string, table string) (*Archive, error) {
	cfg := &aws.Config{Region: aws.String("localhost")}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return &Archive{client: dynamodb.New(sess), table: table}, nil
}

func (a *Archive) PutGeneration(g Generation) error {
	_, err := a.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(a.table),
		Item:      toItem(g),
	})
	if err != nil {
		return errors.Wrapf(err, "could not archive generation %v", g.ID)
	}
	return nil
}

func (a *Archive) GetGeneration(id string) (Generation, error) {
	out, err := a.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(a.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return Generation{}, errors.Wrapf(err, "error from DynamoDB for %v", id)
	}
	if len(out.Item) == 0 {
		return Generation{}, errors.Wrapf(ErrNotFound, "%v", id)
	}
	return fromItem(out.Item)
}

func toItem(g Generation) map[string]*dynamodb.AttributeValue {
	item := map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(g.ID)},
		"Key":       {S: aws.String(g.Key)},
		"Form":      {S: aws.String(g.Form)},
		"Measures":  {N: aws.String(strconv.Itoa(g.Measures))},
		"Path":      {S: aws.String(g.Path)},
		"CreatedAt": {S: aws.String(g.CreatedAt.Format(time.RFC3339))},
		// NOTE: a list keeps the measure order, a string set would not
		"Recipe": {L: recipeList(g.Recipe)},
	}
	// DynamoDB rejects empty strings in some setups
	if g.Style != "" {
		item["Style"] = &dynamodb.AttributeValue{S: aws.String(g.Style)}
	}
	return item
}

func recipeList(recipe []string) []*dynamodb.AttributeValue {
	res := make([]*dynamodb.AttributeValue, len(recipe))
	for i, chain := range recipe {
		res[i] = &dynamodb.AttributeValue{S: aws.String(chain)}
	}
	return res
}

func fromItem(item map[string]*dynamodb.AttributeValue) (Generation, error) {
	var g Generation
	g.ID = str(item["PK"])
	g.Key = str(item["Key"])
	g.Form = str(item["Form"])
	g.Style = str(item["Style"])
	g.Path = str(item["Path"])

	if v := item["Measures"]; v != nil && v.N != nil {
		n, err := strconv.Atoi(*v.N)
		if err != nil {
			return Generation{}, errors.Wrapf(err, "bad Measures on %v", g.ID)
		}
		g.Measures = n
	}
	if created := str(item["CreatedAt"]); created != "" {
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return Generation{}, errors.Wrapf(err, "bad CreatedAt on %v", g.ID)
		}
		g.CreatedAt = t
	}
	if v := item["Recipe"]; v != nil {
		for _, chain := range v.L {
			g.Recipe = append(g.Recipe, str(chain))
		}
	}
	return g, nil
}

func str(v *dynamodb.AttributeValue) string {
	if v == nil || v.S == nil {
		return ""
	}
	return *v.S
}

// String renders a record the way history prints it.
func (g Generation) String() string {
	var b strings.Builder
	b.WriteString("id:       " + g.ID + "\n")
	b.WriteString("created:  " + g.CreatedAt.Format(time.RFC3339) + "\n")
	b.WriteString("key:      " + g.Key + "\n")
	b.WriteString("form:     " + g.Form + "\n")
	style := g.Style
	if style == "" {
		style = "none"
	}
	b.WriteString("style:    " + style + "\n")
	b.WriteString("file:     " + g.Path + "\n")
	b.WriteString("measures: " + strconv.Itoa(g.Measures) + "\n")
	for i, chain := range g.Recipe {
		b.WriteString("  " + strconv.Itoa(i+1) + ": " + chain + "\n")
	}
	return b.String()
}
